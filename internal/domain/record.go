package domain

// Record é uma linha bruta como chega do store externo. Os campos numéricos
// podem vir como número, texto, []byte ou simplesmente não existir.
type Record map[string]any

// Entity identifica uma tabela do store externo
type Entity string

const (
	EntityProducts       Entity = "products"
	EntitySales          Entity = "sales"
	EntityLedgerEntries  Entity = "ledger_entries"
	EntityDailySummaries Entity = "daily_summaries"
)

// entityColumns lista as colunas graváveis de cada entidade
var entityColumns = map[Entity][]string{
	EntityProducts: {
		"id", "sku", "name", "unit_cost", "unit_price", "created_at",
	},
	EntitySales: {
		"id", "sold_at", "channel", "product_id", "product_name", "quantity",
		"gross_amount", "net_amount", "total_cost", "profit", "created_at",
	},
	EntityLedgerEntries: {
		"id", "description", "kind", "amount", "due_date", "status", "created_at",
	},
	EntityDailySummaries: {
		"date", "revenue", "profit", "margin_pct", "sales_count", "updated_at",
	},
}

// entityOrder define a ordenação natural usada ao buscar todas as linhas
var entityOrder = map[Entity]string{
	EntityProducts:       "name ASC",
	EntitySales:          "sold_at ASC",
	EntityLedgerEntries:  "created_at ASC",
	EntityDailySummaries: "date ASC",
}

func (e Entity) String() string {
	return string(e)
}

// Valid informa se a entidade é conhecida
func (e Entity) Valid() bool {
	_, ok := entityColumns[e]
	return ok
}

// Columns retorna as colunas graváveis da entidade
func (e Entity) Columns() []string {
	return entityColumns[e]
}

// OrderBy retorna a cláusula de ordenação padrão da entidade
func (e Entity) OrderBy() string {
	return entityOrder[e]
}

// HasColumn informa se a coluna pertence à entidade
func (e Entity) HasColumn(column string) bool {
	for _, c := range entityColumns[e] {
		if c == column {
			return true
		}
	}
	return false
}
