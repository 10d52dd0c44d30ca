package dashboard

import (
	"context"

	"github.com/vfg2006/dropos-api/internal/domain"
)

// ViewOptions controla como os valores são apresentados numa leitura
type ViewOptions struct {
	// Privacy troca todo valor monetário pela máscara
	Privacy bool
	// Refresh ignora o snapshot em cache e relê o store
	Refresh bool
}

// Reader reúne as leituras do painel
type Reader interface {
	GetDashboard(ctx context.Context, opts ViewOptions) (*domain.DashboardView, error)
	GetBreakdown(ctx context.Context, dimension domain.Dimension, opts ViewOptions) (*domain.BreakdownView, error)
	GetPendingPayables(ctx context.Context, opts ViewOptions) (*domain.PendingPayablesView, error)
	ListSales(ctx context.Context, opts ViewOptions) ([]domain.SaleView, error)
	ListProducts(ctx context.Context, opts ViewOptions) ([]domain.ProductView, error)
	ListLedgerEntries(ctx context.Context, opts ViewOptions) ([]domain.LedgerEntryView, error)
	ListDailySummaries(ctx context.Context, opts ViewOptions) ([]domain.DailySummaryView, error)
}

// Writer reúne os comandos de cadastro
type Writer interface {
	RegisterSale(ctx context.Context, req domain.RegisterSaleRequest, opts ViewOptions) (*domain.RegisterSaleResponse, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest, opts ViewOptions) (*domain.ProductView, error)
	CreateLedgerEntry(ctx context.Context, req domain.CreateLedgerEntryRequest, opts ViewOptions) (*domain.LedgerEntryView, error)
}

type Dashboarder interface {
	Reader
	Writer
}
