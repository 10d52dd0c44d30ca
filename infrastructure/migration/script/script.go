package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dropos-api/infrastructure/database/postgres"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/pkg/utils"
)

// schemaStatements cria as tabelas lidas pelo RecordStore. sales.product_id
// não tem FK: linhas antigas e referências órfãs precisam continuar gravando.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		sku        TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL,
		unit_cost  NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_cost >= 0),
		unit_price NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id           TEXT PRIMARY KEY,
		sold_at      TIMESTAMPTZ NOT NULL,
		channel      TEXT NOT NULL,
		product_id   TEXT,
		product_name TEXT NOT NULL DEFAULT '',
		quantity     INTEGER NOT NULL CHECK (quantity >= 1),
		gross_amount NUMERIC(14,2) CHECK (gross_amount >= 0),
		net_amount   NUMERIC(14,2) NOT NULL CHECK (net_amount >= 0),
		total_cost   NUMERIC(14,2) NOT NULL DEFAULT 0,
		profit       NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS sales_sold_at_idx ON sales (sold_at)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		kind        TEXT NOT NULL,
		amount      NUMERIC(14,2) NOT NULL CHECK (amount >= 0),
		due_date    DATE,
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_summaries (
		date        DATE PRIMARY KEY,
		revenue     NUMERIC(14,2) NOT NULL DEFAULT 0,
		profit      NUMERIC(14,2) NOT NULL DEFAULT 0,
		margin_pct  NUMERIC(7,2) NOT NULL DEFAULT 0,
		sales_count INTEGER NOT NULL DEFAULT 0,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

type seedProduct struct {
	SKU       string
	Name      string
	UnitCost  string
	UnitPrice string
}

var seedProducts = []seedProduct{
	{SKU: "FONE-BT-01", Name: "Fone Bluetooth", UnitCost: "35.90", UnitPrice: "89.90"},
	{SKU: "CAPA-IP15", Name: "Capa iPhone 15", UnitCost: "8.50", UnitPrice: "39.90"},
	{SKU: "CARR-USBC", Name: "Carregador USB-C 20W", UnitCost: "22.00", UnitPrice: "59.90"},
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schemaStatements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

// addUniqueProductName garante que a busca por nome das vendas antigas
// resolva para um único produto
func addUniqueProductName(ctx context.Context, tx *sql.Tx) error {
	var constraintExists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = 'products'
			AND constraint_type = 'UNIQUE'
			AND constraint_name = 'products_name_unique'
		)
	`).Scan(&constraintExists)
	if err != nil {
		return err
	}

	if constraintExists {
		logrus.Info("Constraint UNIQUE já existe em products.name")
		return nil
	}

	_, err = tx.ExecContext(ctx, "ALTER TABLE products ADD CONSTRAINT products_name_unique UNIQUE (name)")
	return err
}

func seedProductsInsert(createdAt time.Time) (sq.InsertBuilder, error) {
	builder := sq.Insert("products").
		Columns("id", "sku", "name", "unit_cost", "unit_price", "created_at").
		Suffix("ON CONFLICT (name) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, p := range seedProducts {
		id, err := utils.GenerateID()
		if err != nil {
			return builder, err
		}
		builder = builder.Values(
			id,
			p.SKU,
			p.Name,
			decimal.RequireFromString(p.UnitCost),
			decimal.RequireFromString(p.UnitPrice),
			createdAt,
		)
	}

	return builder, nil
}

func seed(ctx context.Context, tx *sql.Tx) error {
	builder, err := seedProductsInsert(time.Now())
	if err != nil {
		return err
	}

	result, err := builder.RunWith(tx).ExecContext(ctx)
	if err != nil {
		return err
	}

	inserted, _ := result.RowsAffected()
	logrus.WithField("inserted", inserted).Info("Catálogo inicial gravado")
	return nil
}

func main() {
	withSeed := flag.Bool("seed", false, "grava um catálogo de exemplo")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if err := addUniqueProductName(ctx, tx); err != nil {
			return err
		}
		if *withSeed {
			return seed(ctx, tx)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}
