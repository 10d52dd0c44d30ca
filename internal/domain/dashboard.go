package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dimension string

const (
	DimensionDayOfWeek    Dimension = "day-of-week"
	DimensionCalendarDate Dimension = "calendar-date"
	DimensionChannel      Dimension = "channel"
)

func ParseDimension(raw string) (Dimension, bool) {
	switch d := Dimension(raw); d {
	case DimensionDayOfWeek, DimensionCalendarDate, DimensionChannel:
		return d, true
	}
	return "", false
}

// TodayTotals são os números dos cards principais do painel
type TodayTotals struct {
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
	MarginPct decimal.Decimal
}

type DimensionTotal struct {
	Key   string
	Total decimal.Decimal
}

type ProductProfit struct {
	ProductID   string
	ProductName string
	Profit      decimal.Decimal
}

type DimensionTotalView struct {
	Key   string `json:"key"`
	Total string `json:"total"`
}

type ProductProfitView struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Profit      string `json:"profit"`
}

type BreakdownView struct {
	Dimension Dimension            `json:"dimension"`
	Items     []DimensionTotalView `json:"items"`
}

// DashboardView é tudo que a tela inicial precisa, já mascarado quando
// o modo privacidade está ligado
type DashboardView struct {
	RevenueToday    string               `json:"revenue_today"`
	ProfitToday     string               `json:"profit_today"`
	MarginPct       string               `json:"margin_pct"`
	PendingPayables string               `json:"pending_payables"`
	SalesByWeekday  []DimensionTotalView `json:"sales_by_weekday"`
	TopProducts     []ProductProfitView  `json:"top_products"`
	ActiveDays      int                  `json:"active_days"`
	HealthScore     int                  `json:"health_score"`
	ZombieProducts  []ZombieProductView  `json:"zombie_products"`
	Goals           *GoalsView           `json:"goals,omitempty"`
	PrivacyMode     bool                 `json:"privacy_mode"`
	Warnings        []Warning            `json:"warnings,omitempty"`
	LoadedAt        time.Time            `json:"loaded_at"`
}

// ZombieProduct é um produto parado: sem venda recente ou que nunca vendeu
type ZombieProduct struct {
	ProductID   string
	ProductName string
	LastSoldAt  *time.Time
}

type ZombieProductView struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	LastSoldAt  string `json:"last_sold_at,omitempty"`
}

// GoalsView mostra o andamento das metas configuradas. Percentuais não são mascarados.
type GoalsView struct {
	DailyTarget        string `json:"daily_target"`
	DailyProgressPct   string `json:"daily_progress_pct"`
	MonthlyRevenue     string `json:"monthly_revenue"`
	MonthlyTarget      string `json:"monthly_target"`
	MonthlyProgressPct string `json:"monthly_progress_pct"`
}
