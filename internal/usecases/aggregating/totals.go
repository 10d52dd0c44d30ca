package aggregating

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// AggregateTodayTotals soma as vendas do dia de now, no fuso de now
func AggregateTodayTotals(sales []domain.Sale, now time.Time) domain.TodayTotals {
	day := AggregateDayTotals(sales, now)
	return domain.TodayTotals{
		Revenue:   day.Revenue,
		Profit:    day.Profit,
		MarginPct: day.MarginPct,
	}
}

// AggregateDayTotals soma as vendas cujo sold_at cai no mesmo dia de
// calendário que day, usando o fuso de day. Vendas sem data ficam de fora.
func AggregateDayTotals(sales []domain.Sale, day time.Time) domain.DayTotals {
	loc := day.Location()
	year, month, date := day.Date()

	revenue := decimal.Zero
	cost := decimal.Zero
	count := 0

	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		y, m, d := s.SoldAt.In(loc).Date()
		if y != year || m != month || d != date {
			continue
		}
		revenue = revenue.Add(s.NetAmount)
		cost = cost.Add(s.TotalCost)
		count++
	}

	profit := revenue.Sub(cost)

	return domain.DayTotals{
		Revenue:    revenue,
		Profit:     profit,
		MarginPct:  MarginPct(profit, revenue),
		SalesCount: count,
	}
}

// MarginPct é lucro/receita*100, ou zero quando não há receita
func MarginPct(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred)
}
