package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

// ComputePendingPayables soma as contas a pagar ainda pendentes
func ComputePendingPayables(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.IsPendingPayable() {
			total = total.Add(e.Amount)
		}
	}
	return total
}
