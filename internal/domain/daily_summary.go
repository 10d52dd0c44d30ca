package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayTotals consolida as vendas de um dia de calendário
type DayTotals struct {
	Revenue    decimal.Decimal
	Profit     decimal.Decimal
	MarginPct  decimal.Decimal
	SalesCount int
}

// DailySummary é dado derivado: pode ser reconstruído a partir das vendas
type DailySummary struct {
	Date       time.Time       `json:"date"`
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
	MarginPct  decimal.Decimal `json:"margin_pct"`
	SalesCount int             `json:"sales_count"`
}

type DailySummaryView struct {
	Date       string `json:"date"`
	Revenue    string `json:"revenue"`
	Profit     string `json:"profit"`
	MarginPct  string `json:"margin_pct"`
	SalesCount int    `json:"sales_count"`
}
