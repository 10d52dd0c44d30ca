package aggregating

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

// fieldAliases lista, por campo, os nomes usados pelas versões antigas do
// painel. O primeiro nome presente no registro vence.
var fieldAliases = map[string][]string{
	"name":         {"name", "nome"},
	"unit_cost":    {"unit_cost", "custo", "custo_fornecedor"},
	"unit_price":   {"unit_price", "preco_venda", "preco_venda_alvo"},
	"sold_at":      {"sold_at", "data_venda", "data"},
	"channel":      {"channel", "canal"},
	"product_id":   {"product_id", "produto_id"},
	"product_name": {"product_name", "produto", "produto_nome"},
	"quantity":     {"quantity", "qtd", "quantidade"},
	"gross_amount": {"gross_amount", "valor_bruto", "faturamento_bruto"},
	"net_amount":   {"net_amount", "valor_liquido", "valor_liquido_recebido"},
	"total_cost":   {"total_cost", "custo_produto", "custo_mercadoria_total"},
	"description":  {"description", "descricao"},
	"kind":         {"kind", "tipo"},
	"amount":       {"amount", "valor"},
	"due_date":     {"due_date", "vencimento"},
}

func field(r domain.Record, name string) any {
	aliases, ok := fieldAliases[name]
	if !ok {
		return r[name]
	}
	for _, alias := range aliases {
		if v, exists := r[alias]; exists {
			return v
		}
	}
	return nil
}

// recordNormalizer acumula avisos enquanto converte os campos de um registro
type recordNormalizer struct {
	entity   domain.Entity
	recordID string
	warnings []domain.Warning
}

func (n *recordNormalizer) malformed(fieldName string, value any) {
	n.warnings = append(n.warnings, domain.NewMalformedRecordWarning(n.entity, n.recordID, fieldName, value))
}

// amount lê um valor monetário obrigatório e não negativo
func (n *recordNormalizer) amount(r domain.Record, fieldName string) decimal.Decimal {
	raw := field(r, fieldName)
	d, ok := ParseAmount(raw)
	if !ok || d.IsNegative() {
		n.malformed(fieldName, raw)
		return decimal.Zero
	}
	return d
}

// optionalAmount distingue ausente (sem aviso) de ilegível (com aviso)
func (n *recordNormalizer) optionalAmount(r domain.Record, fieldName string) (decimal.Decimal, bool) {
	raw := field(r, fieldName)
	if isBlank(raw) {
		return decimal.Zero, false
	}
	d, ok := ParseAmount(raw)
	if !ok || d.IsNegative() {
		n.malformed(fieldName, raw)
		return decimal.Zero, false
	}
	return d, true
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	return stringField(v) == ""
}

// NormalizeProducts converte os registros do catálogo
func NormalizeProducts(records []domain.Record) ([]domain.Product, []domain.Warning) {
	products := make([]domain.Product, 0, len(records))
	var warnings []domain.Warning

	for _, r := range records {
		n := recordNormalizer{entity: domain.EntityProducts, recordID: stringField(r["id"])}

		p := domain.Product{
			ID:        n.recordID,
			SKU:       stringField(r["sku"]),
			Name:      stringField(field(r, "name")),
			UnitCost:  n.amount(r, "unit_cost"),
			UnitPrice: n.amount(r, "unit_price"),
		}
		if createdAt, ok := ParseTime(r["created_at"], time.UTC); ok {
			p.CreatedAt = createdAt
		}

		products = append(products, p)
		warnings = append(warnings, n.warnings...)
	}

	return products, warnings
}

// NormalizeSales converte os registros de vendas. O custo total gravado na
// venda é usado como está; só linhas antigas sem custo recorrem ao catálogo.
func NormalizeSales(records []domain.Record, catalog *domain.Catalog, loc *time.Location) ([]domain.Sale, []domain.Warning) {
	sales := make([]domain.Sale, 0, len(records))
	var warnings []domain.Warning

	for _, r := range records {
		n := recordNormalizer{entity: domain.EntitySales, recordID: stringField(r["id"])}

		s := domain.Sale{
			ID:          n.recordID,
			ProductID:   stringField(field(r, "product_id")),
			ProductName: stringField(field(r, "product_name")),
		}
		s.Channel, _ = domain.ParseChannel(stringField(field(r, "channel")))

		rawSoldAt := field(r, "sold_at")
		if soldAt, ok := ParseTime(rawSoldAt, loc); ok {
			s.SoldAt = soldAt
		} else {
			n.malformed("sold_at", rawSoldAt)
		}

		rawQuantity := field(r, "quantity")
		if quantity, ok := ParseQuantity(rawQuantity); ok && quantity >= 1 {
			s.Quantity = quantity
		} else {
			n.malformed("quantity", rawQuantity)
		}

		s.NetAmount = n.amount(r, "net_amount")
		s.GrossAmount, s.HasGross = n.optionalAmount(r, "gross_amount")

		if isBlank(field(r, "total_cost")) {
			s.TotalCost = n.costFromCatalog(s, catalog)
		} else {
			s.TotalCost = n.amount(r, "total_cost")
		}

		sales = append(sales, s)
		warnings = append(warnings, n.warnings...)
	}

	return sales, warnings
}

func (n *recordNormalizer) costFromCatalog(s domain.Sale, catalog *domain.Catalog) decimal.Decimal {
	product := catalog.Lookup(s.ProductID, s.ProductName)

	quantity := s.Quantity
	if quantity < 1 {
		// quantidade ilegível já foi avisada; sem ela não há custo a atribuir
		return decimal.Zero
	}

	economics, err := ComputeSaleEconomics(product, productRef(s), quantity, s.NetAmount)
	if err != nil {
		return decimal.Zero
	}
	for _, w := range economics.Warnings {
		w.RecordID = n.recordID
		n.warnings = append(n.warnings, w)
	}
	return economics.TotalCost
}

func productRef(s domain.Sale) string {
	if s.ProductID != "" {
		return s.ProductID
	}
	return s.ProductName
}

// NormalizeLedgerEntries converte os lançamentos do caixa
func NormalizeLedgerEntries(records []domain.Record, loc *time.Location) ([]domain.LedgerEntry, []domain.Warning) {
	entries := make([]domain.LedgerEntry, 0, len(records))
	var warnings []domain.Warning

	for _, r := range records {
		n := recordNormalizer{entity: domain.EntityLedgerEntries, recordID: stringField(r["id"])}

		e := domain.LedgerEntry{
			ID:          n.recordID,
			Description: stringField(field(r, "description")),
			Amount:      n.amount(r, "amount"),
		}

		rawKind := stringField(field(r, "kind"))
		if kind, ok := domain.ParseLedgerKind(rawKind); ok {
			e.Kind = kind
		} else {
			e.Kind = domain.LedgerKind(rawKind)
			n.malformed("kind", rawKind)
		}

		rawStatus := stringField(r["status"])
		if status, ok := domain.ParseLedgerStatus(rawStatus); ok {
			e.Status = status
		} else {
			e.Status = domain.LedgerStatus(rawStatus)
			n.malformed("status", rawStatus)
		}

		rawDue := field(r, "due_date")
		if !isBlank(rawDue) {
			if due, ok := ParseCalendarDate(rawDue, loc); ok {
				e.DueDate = &due
			} else {
				n.malformed("due_date", rawDue)
			}
		}

		entries = append(entries, e)
		warnings = append(warnings, n.warnings...)
	}

	return entries, warnings
}

// NormalizeDailySummaries converte os fechamentos diários gravados pelo agendador
func NormalizeDailySummaries(records []domain.Record, loc *time.Location) ([]domain.DailySummary, []domain.Warning) {
	summaries := make([]domain.DailySummary, 0, len(records))
	var warnings []domain.Warning

	for _, r := range records {
		rawDate := r["date"]
		n := recordNormalizer{entity: domain.EntityDailySummaries, recordID: stringField(rawDate)}

		date, ok := ParseCalendarDate(rawDate, loc)
		if !ok {
			n.malformed("date", rawDate)
			warnings = append(warnings, n.warnings...)
			continue
		}

		s := domain.DailySummary{
			Date:    date,
			Revenue: n.signedAmount(r, "revenue"),
			Profit:  n.signedAmount(r, "profit"),
		}
		s.MarginPct = n.signedAmount(r, "margin_pct")
		if count, ok := ParseQuantity(r["sales_count"]); ok {
			s.SalesCount = count
		} else {
			n.malformed("sales_count", r["sales_count"])
		}

		summaries = append(summaries, s)
		warnings = append(warnings, n.warnings...)
	}

	return summaries, warnings
}

// signedAmount é como amount, mas aceita negativos (lucro e margem podem ser)
func (n *recordNormalizer) signedAmount(r domain.Record, fieldName string) decimal.Decimal {
	raw := r[fieldName]
	d, ok := ParseAmount(raw)
	if !ok {
		n.malformed(fieldName, raw)
		return decimal.Zero
	}
	return d
}
