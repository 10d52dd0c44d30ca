package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerKind string

const (
	LedgerPayable    LedgerKind = "payable"
	LedgerReceivable LedgerKind = "receivable"
)

type LedgerStatus string

const (
	LedgerPending LedgerStatus = "pending"
	LedgerPaid    LedgerStatus = "paid"
)

var ledgerKindAliases = map[string]LedgerKind{
	"payable":           LedgerPayable,
	"saída":             LedgerPayable,
	"saida":             LedgerPayable,
	"saída (pagar)":     LedgerPayable,
	"despesa":           LedgerPayable,
	"receivable":        LedgerReceivable,
	"entrada":           LedgerReceivable,
	"entrada (receber)": LedgerReceivable,
	"receita":           LedgerReceivable,
}

var ledgerStatusAliases = map[string]LedgerStatus{
	"pending":  LedgerPending,
	"pendente": LedgerPending,
	"paid":     LedgerPaid,
	"pago":     LedgerPaid,
}

func ParseLedgerKind(raw string) (LedgerKind, bool) {
	kind, ok := ledgerKindAliases[strings.ToLower(strings.TrimSpace(raw))]
	return kind, ok
}

// ParseLedgerStatus converte o status; vazio vira pendente
func ParseLedgerStatus(raw string) (LedgerStatus, bool) {
	if strings.TrimSpace(raw) == "" {
		return LedgerPending, true
	}
	status, ok := ledgerStatusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

type LedgerEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Kind        LedgerKind      `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Status      LedgerStatus    `json:"status"`
}

// IsPendingPayable indica uma conta a pagar ainda em aberto
func (e LedgerEntry) IsPendingPayable() bool {
	return e.Kind == LedgerPayable && e.Status == LedgerPending
}

type CreateLedgerEntryRequest struct {
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date"`
	Status      string          `json:"status"`
}

type LedgerEntryView struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Kind        LedgerKind   `json:"kind"`
	Amount      string       `json:"amount"`
	DueDate     string       `json:"due_date,omitempty"`
	Status      LedgerStatus `json:"status"`
}

type PendingPayablesView struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}
