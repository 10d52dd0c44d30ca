package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dropos-api/internal/domain"
)

func TestAggregateTodayTotals(t *testing.T) {
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, saoPaulo)

	t.Run("conjunto vazio", func(t *testing.T) {
		got := AggregateTodayTotals(nil, now)
		assertDecimal(t, "0", got.Revenue)
		assertDecimal(t, "0", got.Profit)
		assertDecimal(t, "0", got.MarginPct)
	})

	t.Run("considera só as vendas de hoje no fuso de operação", func(t *testing.T) {
		sales := []domain.Sale{
			sale(time.Date(2026, 10, 15, 9, 0, 0, 0, saoPaulo), domain.ChannelMarketplaceA, "100", "60"),
			sale(time.Date(2026, 10, 15, 23, 59, 0, 0, saoPaulo), domain.ChannelWalkIn, "50", "20"),
			// 01:30 UTC do dia 16 ainda é dia 15 em São Paulo
			sale(time.Date(2026, 10, 16, 1, 30, 0, 0, time.UTC), domain.ChannelWalkIn, "50", "20"),
			// 02:00 UTC do dia 15 é dia 14 em São Paulo
			sale(time.Date(2026, 10, 15, 2, 0, 0, 0, time.UTC), domain.ChannelWalkIn, "999", "1"),
			sale(time.Date(2026, 10, 14, 12, 0, 0, 0, saoPaulo), domain.ChannelWalkIn, "999", "1"),
		}

		got := AggregateTodayTotals(sales, now)
		assertDecimal(t, "200", got.Revenue)
		assertDecimal(t, "100", got.Profit)
		assertDecimal(t, "50", got.MarginPct)
	})

	t.Run("receita zero não divide por zero", func(t *testing.T) {
		sales := []domain.Sale{
			sale(now, domain.ChannelWalkIn, "0", "30"),
		}

		got := AggregateTodayTotals(sales, now)
		assertDecimal(t, "0", got.Revenue)
		assertDecimal(t, "-30", got.Profit)
		assertDecimal(t, "0", got.MarginPct)
	})

	t.Run("venda sem data é ignorada", func(t *testing.T) {
		sales := []domain.Sale{
			sale(time.Time{}, domain.ChannelWalkIn, "70", "0"),
			sale(now, domain.ChannelWalkIn, "30", "10"),
		}

		got := AggregateTodayTotals(sales, now)
		assertDecimal(t, "30", got.Revenue)
	})
}

func TestAggregateDayTotals_countsSales(t *testing.T) {
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, saoPaulo)
	sales := []domain.Sale{
		sale(day.Add(time.Hour), domain.ChannelWalkIn, "10", "5"),
		sale(day.Add(20*time.Hour), domain.ChannelWalkIn, "30", "5"),
		sale(day.Add(25*time.Hour), domain.ChannelWalkIn, "30", "5"),
	}

	got := AggregateDayTotals(sales, day)
	assert.Equal(t, 2, got.SalesCount)
	assertDecimal(t, "40", got.Revenue)
	assertDecimal(t, "30", got.Profit)
	assertDecimal(t, "75", got.MarginPct)
}

func TestAggregateTodayTotals_malformedRecordContributesZero(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, saoPaulo)
	records := []domain.Record{
		{"id": "s1", "sold_at": "2026-10-15", "net_amount": "100", "total_cost": "40", "quantity": 1},
		{"id": "s2", "sold_at": "2026-10-15", "net_amount": 50.0, "total_cost": "10", "quantity": 1},
		{"id": "s3", "sold_at": "2026-10-15", "net_amount": "abc", "total_cost": "0", "quantity": 1},
		{"id": "s4", "sold_at": "2026-10-15", "net_amount": []byte("25.50"), "total_cost": 5, "quantity": "2"},
		{"id": "s5", "sold_at": "2026-10-15", "net_amount": "24.50", "total_cost": "4.50", "quantity": 1},
	}

	sales, warnings := NormalizeSales(records, domain.NewCatalog(nil), saoPaulo)
	assert.Len(t, sales, 5)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, domain.WarningMalformedRecord, warnings[0].Kind)
		assert.Equal(t, "s3", warnings[0].RecordID)
		assert.Equal(t, "net_amount", warnings[0].Field)
	}

	got := AggregateTodayTotals(sales, now)
	assertDecimal(t, "200", got.Revenue)
	assertDecimal(t, "140.5", got.Profit)
}
