package aggregating

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dropos-api/internal/domain"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func sale(soldAt time.Time, channel domain.Channel, net, cost string) domain.Sale {
	return domain.Sale{
		SoldAt:    soldAt,
		Channel:   channel,
		Quantity:  1,
		NetAmount: dec(net),
		TotalCost: dec(cost),
	}
}
