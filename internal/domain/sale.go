package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Channel string

const (
	ChannelMarketplaceA  Channel = "marketplace-a"
	ChannelMarketplaceB  Channel = "marketplace-b"
	ChannelDirectMessage Channel = "direct-message"
	ChannelWalkIn        Channel = "walk-in"
)

// channelAliases mapeia os rótulos gravados pelas versões antigas do painel
var channelAliases = map[string]Channel{
	"marketplace-a":  ChannelMarketplaceA,
	"mercado livre":  ChannelMarketplaceA,
	"marketplace-b":  ChannelMarketplaceB,
	"shopee":         ChannelMarketplaceB,
	"direct-message": ChannelDirectMessage,
	"whatsapp":       ChannelDirectMessage,
	"walk-in":        ChannelWalkIn,
	"balcão":         ChannelWalkIn,
	"balcao":         ChannelWalkIn,
}

// ParseChannel converte um rótulo em Channel. Rótulos desconhecidos são
// preservados como vieram e ok volta false.
func ParseChannel(raw string) (Channel, bool) {
	if c, ok := channelAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c, true
	}
	return Channel(strings.TrimSpace(raw)), false
}

type Sale struct {
	ID          string          `json:"id"`
	SoldAt      time.Time       `json:"sold_at"`
	Channel     Channel         `json:"channel"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	HasGross    bool            `json:"-"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// Profit é sempre recalculado a partir do custo congelado na venda
func (s Sale) Profit() decimal.Decimal {
	return s.NetAmount.Sub(s.TotalCost)
}

// Fees é o que ficou com a plataforma: bruto menos líquido
func (s Sale) Fees() decimal.Decimal {
	if !s.HasGross {
		return decimal.Zero
	}
	return s.GrossAmount.Sub(s.NetAmount)
}

// SaleEconomics é o resultado do cálculo de custo e lucro de uma venda
type SaleEconomics struct {
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Profit    decimal.Decimal `json:"profit"`
	Warnings  []Warning       `json:"warnings,omitempty"`
}

// IsLoss indica venda com prejuízo. É um resultado válido, não um erro.
func (e SaleEconomics) IsLoss() bool {
	return e.Profit.IsNegative()
}

type RegisterSaleRequest struct {
	SoldAt      *time.Time       `json:"sold_at"`
	Channel     string           `json:"channel"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity"`
	GrossAmount *decimal.Decimal `json:"gross_amount"`
	NetAmount   decimal.Decimal  `json:"net_amount"`
}

type RegisterSaleResponse struct {
	Sale     SaleView  `json:"sale"`
	Loss     bool      `json:"loss"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type SaleView struct {
	ID          string  `json:"id"`
	SoldAt      string  `json:"sold_at"`
	Channel     Channel `json:"channel"`
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	GrossAmount string  `json:"gross_amount,omitempty"`
	NetAmount   string  `json:"net_amount"`
	Fees        string  `json:"fees,omitempty"`
	TotalCost   string  `json:"total_cost"`
	Profit      string  `json:"profit"`
}
