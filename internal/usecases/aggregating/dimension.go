package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

// AggregateByDimension agrupa o valor líquido pela dimensão pedida.
// Ordem: domingo→sábado para dia da semana, cronológica para data e
// ordem de primeira aparição para canal. Só entram grupos com vendas.
func AggregateByDimension(sales []domain.Sale, dimension domain.Dimension, loc *time.Location) ([]domain.DimensionTotal, error) {
	if loc == nil {
		loc = time.UTC
	}

	switch dimension {
	case domain.DimensionDayOfWeek:
		return byWeekday(sales, loc), nil
	case domain.DimensionCalendarDate:
		return byCalendarDate(sales, loc), nil
	case domain.DimensionChannel:
		return byChannel(sales), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
}

func byWeekday(sales []domain.Sale, loc *time.Location) []domain.DimensionTotal {
	var totals [7]decimal.Decimal
	var seen [7]bool

	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		wd := s.SoldAt.In(loc).Weekday()
		totals[wd] = totals[wd].Add(s.NetAmount)
		seen[wd] = true
	}

	result := make([]domain.DimensionTotal, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if seen[wd] {
			result = append(result, domain.DimensionTotal{Key: wd.String(), Total: totals[wd]})
		}
	}
	return result
}

func byCalendarDate(sales []domain.Sale, loc *time.Location) []domain.DimensionTotal {
	totals := make(map[string]decimal.Decimal)

	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		key := s.SoldAt.In(loc).Format(time.DateOnly)
		totals[key] = totals[key].Add(s.NetAmount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	// YYYY-MM-DD ordena lexicograficamente na ordem cronológica
	sort.Strings(keys)

	result := make([]domain.DimensionTotal, 0, len(keys))
	for _, k := range keys {
		result = append(result, domain.DimensionTotal{Key: k, Total: totals[k]})
	}
	return result
}

func byChannel(sales []domain.Sale) []domain.DimensionTotal {
	index := make(map[domain.Channel]int)
	result := make([]domain.DimensionTotal, 0)

	for _, s := range sales {
		i, ok := index[s.Channel]
		if !ok {
			i = len(result)
			index[s.Channel] = i
			result = append(result, domain.DimensionTotal{Key: string(s.Channel), Total: decimal.Zero})
		}
		result[i].Total = result[i].Total.Add(s.NetAmount)
	}
	return result
}
