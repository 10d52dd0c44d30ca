package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/dropos-api/infrastructure/database/postgres"
	"github.com/vfg2006/dropos-api/internal/domain"
)

const (
	OpFetch  = "fetch"
	OpInsert = "insert"
	OpUpsert = "upsert"
)

var (
	ErrUnknownEntity       = errors.New("unknown entity")
	ErrEmptyRecord         = errors.New("record has no writable columns")
	ErrInvalidConflict     = errors.New("invalid conflict columns")
	ErrConstraintViolation = errors.New("constraint violation")
)

// RecordStore é o acesso ao store externo. Implementações devolvem
// *domain.StoreUnavailableError quando o store não responde; o erro chega
// ao chamador sem retry.
type RecordStore interface {
	FetchAll(ctx context.Context, entity domain.Entity) ([]domain.Record, error)
	Insert(ctx context.Context, entity domain.Entity, record domain.Record) error
	Upsert(ctx context.Context, entity domain.Entity, record domain.Record, conflictColumns ...string) error
}

type recordStore struct {
	conn postgres.Queryer
}

func NewRecordStore(conn postgres.Queryer) RecordStore {
	return &recordStore{
		conn: conn,
	}
}

func (r *recordStore) FetchAll(ctx context.Context, entity domain.Entity) ([]domain.Record, error) {
	query, args, err := buildFetchAll(entity)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyError(OpFetch, entity, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, classifyError(OpFetch, entity, err)
	}

	return records, nil
}

func (r *recordStore) Insert(ctx context.Context, entity domain.Entity, record domain.Record) error {
	query, args, err := buildInsert(entity, record)
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return classifyError(OpInsert, entity, err)
	}

	return nil
}

func (r *recordStore) Upsert(ctx context.Context, entity domain.Entity, record domain.Record, conflictColumns ...string) error {
	query, args, err := buildUpsert(entity, record, conflictColumns)
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return classifyError(OpUpsert, entity, err)
	}

	return nil
}

func buildFetchAll(entity domain.Entity) (string, []interface{}, error) {
	if !entity.Valid() {
		return "", nil, errors.Wrapf(ErrUnknownEntity, "%q", entity)
	}

	query := squirrel.
		Select("*").
		From(entity.String()).
		PlaceholderFormat(squirrel.Dollar)
	if order := entity.OrderBy(); order != "" {
		query = query.OrderBy(order)
	}

	statement, args, err := query.ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir a query")
	}
	return statement, args, nil
}

// writableColumns filtra o registro pelas colunas da entidade, em ordem alfabética
func writableColumns(entity domain.Entity, record domain.Record) ([]string, []interface{}) {
	columns := make([]string, 0, len(record))
	for column := range record {
		if entity.HasColumn(column) {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)

	values := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		values = append(values, record[column])
	}
	return columns, values
}

func insertBuilder(entity domain.Entity, record domain.Record) (squirrel.InsertBuilder, []string, error) {
	if !entity.Valid() {
		return squirrel.InsertBuilder{}, nil, errors.Wrapf(ErrUnknownEntity, "%q", entity)
	}

	columns, values := writableColumns(entity, record)
	if len(columns) == 0 {
		return squirrel.InsertBuilder{}, nil, errors.Wrapf(ErrEmptyRecord, "%s", entity)
	}

	builder := squirrel.StatementBuilder.
		Insert(entity.String()).
		Columns(columns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar)

	return builder, columns, nil
}

func buildInsert(entity domain.Entity, record domain.Record) (string, []interface{}, error) {
	builder, _, err := insertBuilder(entity, record)
	if err != nil {
		return "", nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir a query")
	}
	return query, args, nil
}

// buildUpsert gera INSERT ... ON CONFLICT. As colunas de conflito precisam
// estar no registro; as demais são atualizadas com EXCLUDED.
func buildUpsert(entity domain.Entity, record domain.Record, conflictColumns []string) (string, []interface{}, error) {
	builder, columns, err := insertBuilder(entity, record)
	if err != nil {
		return "", nil, err
	}

	if len(conflictColumns) == 0 {
		return "", nil, errors.Wrapf(ErrInvalidConflict, "%s: nenhuma coluna informada", entity)
	}

	conflict := make(map[string]struct{}, len(conflictColumns))
	for _, column := range conflictColumns {
		if _, ok := record[column]; !ok || !entity.HasColumn(column) {
			return "", nil, errors.Wrapf(ErrInvalidConflict, "%s: coluna %q", entity, column)
		}
		conflict[column] = struct{}{}
	}

	updates := make([]string, 0, len(columns))
	for _, column := range columns {
		if _, ok := conflict[column]; !ok {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		}
	}

	suffix := fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(conflictColumns, ", "))
	if len(updates) > 0 {
		suffix = fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(conflictColumns, ", "), strings.Join(updates, ", "))
	}

	query, args, err := builder.Suffix(suffix).ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir a query")
	}
	return query, args, nil
}

// scanRecords lê as linhas como mapas coluna→valor. O lib/pq devolve numeric
// como []byte; convertemos para string para o normalizador.
func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		records = append(records, toRecord(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func toRecord(columns []string, values []interface{}) domain.Record {
	record := make(domain.Record, len(columns))
	for i, column := range columns {
		if b, ok := values[i].([]byte); ok {
			record[column] = string(b)
			continue
		}
		record[column] = values[i]
	}
	return record
}

// classifyError separa violação de constraint (erro do chamador) de falha do store
func classifyError(op string, entity domain.Entity, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return errors.Wrapf(ErrConstraintViolation, "%s %s: %s (código: %s)", op, entity, pqErr.Message, pqErr.Code)
	}
	return domain.NewStoreUnavailableError(op, entity, err)
}
