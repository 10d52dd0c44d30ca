package aggregating

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

// RankProductsByProfit ordena os produtos pelo lucro acumulado (curva ABC).
// limit <= 0 devolve todos.
func RankProductsByProfit(sales []domain.Sale, limit int) []domain.ProductProfit {
	index := make(map[string]int)
	ranking := make([]domain.ProductProfit, 0)

	for _, s := range sales {
		key := productRef(s)
		i, ok := index[key]
		if !ok {
			i = len(ranking)
			index[key] = i
			ranking = append(ranking, domain.ProductProfit{
				ProductID:   s.ProductID,
				ProductName: s.ProductName,
				Profit:      decimal.Zero,
			})
		}
		ranking[i].Profit = ranking[i].Profit.Add(s.Profit())
		if s.ProductName != "" {
			ranking[i].ProductName = s.ProductName
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		if !ranking[a].Profit.Equal(ranking[b].Profit) {
			return ranking[a].Profit.GreaterThan(ranking[b].Profit)
		}
		return ranking[a].ProductName < ranking[b].ProductName
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// CountActiveDays conta os dias distintos com pelo menos uma venda
func CountActiveDays(sales []domain.Sale, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	days := make(map[string]struct{})
	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		days[s.SoldAt.In(loc).Format(time.DateOnly)] = struct{}{}
	}
	return len(days)
}
