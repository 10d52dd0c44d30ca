package aggregating

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

const (
	// ZombieAfter é o tempo sem venda a partir do qual um produto vira zumbi
	ZombieAfter = 60 * 24 * time.Hour

	baseHealthScore = 85
	zombiePenalty   = 5
)

// FindZombieProducts lista os produtos sem venda há mais de ZombieAfter.
// Produto que nunca vendeu também é zumbi. A venda é associada ao produto
// pelo id e, em linhas antigas, pelo nome.
func FindZombieProducts(products []domain.Product, sales []domain.Sale, now time.Time) []domain.ZombieProduct {
	catalog := domain.NewCatalog(products)

	// o catálogo aponta para os elementos de products
	lastSold := make(map[*domain.Product]time.Time)
	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		product := catalog.Lookup(s.ProductID, s.ProductName)
		if product == nil {
			continue
		}
		if last, ok := lastSold[product]; !ok || s.SoldAt.After(last) {
			lastSold[product] = s.SoldAt
		}
	}

	zombies := make([]domain.ZombieProduct, 0)
	for i := range products {
		p := &products[i]
		last, sold := lastSold[p]
		if sold && now.Sub(last) <= ZombieAfter {
			continue
		}

		zombie := domain.ZombieProduct{ProductID: p.ID, ProductName: p.Name}
		if sold {
			zombie.LastSoldAt = &last
		}
		zombies = append(zombies, zombie)
	}
	return zombies
}

// HealthScore parte de 85 e perde 5 pontos por produto zumbi, entre 0 e 100
func HealthScore(zombies int) int {
	score := baseHealthScore - zombiePenalty*zombies
	return min(max(score, 0), 100)
}

// AggregateMonthTotals soma as vendas do mês de calendário de now, no fuso de now
func AggregateMonthTotals(sales []domain.Sale, now time.Time) domain.DayTotals {
	loc := now.Location()
	year, month, _ := now.Date()

	revenue := decimal.Zero
	cost := decimal.Zero
	count := 0

	for _, s := range sales {
		if s.SoldAt.IsZero() {
			continue
		}
		y, m, _ := s.SoldAt.In(loc).Date()
		if y != year || m != month {
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

// GoalProgress é realizado/meta*100, com duas casas. Meta zero ou negativa
// significa meta não definida e devolve zero.
func GoalProgress(achieved, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return achieved.Div(target).Mul(hundred).Round(2)
}
