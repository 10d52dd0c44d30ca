package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dropos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	saoPaulo = time.FixedZone("BRT", -3*60*60)
	fixedNow = time.Date(2026, 10, 15, 14, 0, 0, 0, saoPaulo)
)

func newTestService(t *testing.T, ttl time.Duration) (*Service, *mocks.MockRecordStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)

	cfg := &config.Config{
		App:      config.App{Location: saoPaulo},
		Money:    config.Money{Symbol: "R$", Language: "en-US", Mask: "R$ ****"},
		Snapshot: config.Snapshot{TTL: ttl},
	}

	service := NewService(cfg, store).WithClock(func() time.Time { return fixedNow })
	return service, store
}

func fixtureProducts() []domain.Record {
	return []domain.Record{
		{"id": "p1", "name": "Case X", "unit_cost": "10", "unit_price": "25"},
		{"id": "p2", "name": "Fone", "unit_cost": "30", "unit_price": "80"},
	}
}

func fixtureSales() []domain.Record {
	return []domain.Record{
		{"id": "s1", "sold_at": "2026-10-15T10:00:00-03:00", "channel": "marketplace-a", "product_id": "p1",
			"product_name": "Case X", "quantity": 3, "net_amount": "50", "total_cost": "30"},
		{"id": "s2", "sold_at": "2026-10-15T11:00:00-03:00", "channel": "walk-in", "product_name": "Ghost",
			"quantity": 2, "net_amount": "40"},
		{"id": "s3", "sold_at": "2026-10-14T09:00:00-03:00", "channel": "Shopee", "product_id": "p2",
			"product_name": "Fone", "quantity": 1, "net_amount": "100", "total_cost": "30"},
	}
}

func fixtureLedger() []domain.Record {
	return []domain.Record{
		{"id": "l1", "description": "Fornecedor", "kind": "payable", "amount": "100", "status": "pending"},
		{"id": "l2", "description": "Frete", "kind": "payable", "amount": "50", "status": "paid"},
		{"id": "l3", "description": "Repasse", "kind": "receivable", "amount": "70", "status": "pending"},
	}
}

func expectSnapshot(store *mocks.MockRecordStore, times int) {
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityProducts).Return(fixtureProducts(), nil).Times(times)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntitySales).Return(fixtureSales(), nil).Times(times)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityLedgerEntries).Return(fixtureLedger(), nil).Times(times)
}

func TestService_GetDashboard(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	view, err := service.GetDashboard(context.Background(), ViewOptions{})
	require.NoError(t, err)

	assert.Equal(t, "R$ 90.00", view.RevenueToday)
	assert.Equal(t, "R$ 60.00", view.ProfitToday)
	assert.Equal(t, "66.67", view.MarginPct)
	assert.Equal(t, "R$ 100.00", view.PendingPayables)
	assert.Equal(t, 2, view.ActiveDays)
	assert.Equal(t, 85, view.HealthScore)
	assert.Empty(t, view.ZombieProducts)
	assert.Nil(t, view.Goals, "sem metas configuradas")
	assert.False(t, view.PrivacyMode)

	require.Len(t, view.SalesByWeekday, 2)
	assert.Equal(t, domain.DimensionTotalView{Key: "Wednesday", Total: "R$ 100.00"}, view.SalesByWeekday[0])
	assert.Equal(t, domain.DimensionTotalView{Key: "Thursday", Total: "R$ 90.00"}, view.SalesByWeekday[1])

	require.Len(t, view.TopProducts, 3)
	assert.Equal(t, "Fone", view.TopProducts[0].ProductName)
	assert.Equal(t, "R$ 70.00", view.TopProducts[0].Profit)
	assert.Equal(t, "Ghost", view.TopProducts[1].ProductName)

	require.Len(t, view.Warnings, 1)
	assert.Equal(t, domain.WarningUnmatchedReference, view.Warnings[0].Kind)
	assert.Equal(t, "s2", view.Warnings[0].RecordID)

	t.Run("segunda leitura usa o snapshot em cache", func(t *testing.T) {
		again, err := service.GetDashboard(context.Background(), ViewOptions{})
		require.NoError(t, err)
		assert.Equal(t, view.RevenueToday, again.RevenueToday)
	})
}

func TestService_GetDashboard_privacyMasksEveryMoneyField(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	view, err := service.GetDashboard(context.Background(), ViewOptions{Privacy: true})
	require.NoError(t, err)

	assert.True(t, view.PrivacyMode)
	assert.Equal(t, "R$ ****", view.RevenueToday)
	assert.Equal(t, "R$ ****", view.ProfitToday)
	assert.Equal(t, "R$ ****", view.PendingPayables)
	assert.Equal(t, "66.67", view.MarginPct, "margem não é valor monetário")
	for _, item := range view.SalesByWeekday {
		assert.Equal(t, "R$ ****", item.Total)
	}
	for _, item := range view.TopProducts {
		assert.Equal(t, "R$ ****", item.Profit)
	}

	sales, err := service.ListSales(context.Background(), ViewOptions{Privacy: true})
	require.NoError(t, err)
	for _, sale := range sales {
		assert.Equal(t, "R$ ****", sale.NetAmount)
		assert.Equal(t, "R$ ****", sale.TotalCost)
		assert.Equal(t, "R$ ****", sale.Profit)
	}
}

func TestService_GetDashboard_storeUnavailable(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	storeErr := domain.NewStoreUnavailableError("fetch", domain.EntityProducts, errors.New("connection refused"))

	store.EXPECT().FetchAll(gomock.Any(), domain.EntityProducts).Return(nil, storeErr)

	view, err := service.GetDashboard(context.Background(), ViewOptions{})
	assert.Nil(t, view, "indisponibilidade nunca vira total zero")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Same(t, storeErr, err)

	t.Run("falha não fica em cache", func(t *testing.T) {
		expectSnapshot(store, 1)
		view, err := service.GetDashboard(context.Background(), ViewOptions{})
		require.NoError(t, err)
		assert.Equal(t, "R$ 90.00", view.RevenueToday)
	})
}

func TestService_GetDashboard_refreshBypassesCache(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 2)

	_, err := service.GetDashboard(context.Background(), ViewOptions{})
	require.NoError(t, err)
	_, err = service.GetDashboard(context.Background(), ViewOptions{Refresh: true})
	require.NoError(t, err)
}

func TestService_GetBreakdown(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	view, err := service.GetBreakdown(context.Background(), domain.DimensionChannel, ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.DimensionChannel, view.Dimension)
	assert.Equal(t, []domain.DimensionTotalView{
		{Key: "marketplace-a", Total: "R$ 50.00"},
		{Key: "walk-in", Total: "R$ 40.00"},
		{Key: "marketplace-b", Total: "R$ 100.00"},
	}, view.Items)

	t.Run("dimensão desconhecida não consulta o store", func(t *testing.T) {
		_, err := service.GetBreakdown(context.Background(), "month", ViewOptions{})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "dimension", validationErr.Field)
	})
}

func TestService_GetPendingPayables(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	view, err := service.GetPendingPayables(context.Background(), ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, &domain.PendingPayablesView{Total: "R$ 100.00", Count: 1}, view)
}

func TestService_ListProductsAndLedger(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	products, err := service.ListProducts(context.Background(), ViewOptions{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "R$ 10.00", products[0].UnitCost)

	entries, err := service.ListLedgerEntries(context.Background(), ViewOptions{Privacy: true})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "R$ ****", entries[0].Amount)
	assert.Equal(t, domain.LedgerPaid, entries[1].Status)
}

func TestService_RegisterSale(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 2)

	var inserted domain.Record
	store.EXPECT().
		Insert(gomock.Any(), domain.EntitySales, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Entity, record domain.Record) error {
			inserted = record
			return nil
		})

	_, err := service.GetDashboard(context.Background(), ViewOptions{})
	require.NoError(t, err)

	resp, err := service.RegisterSale(context.Background(), domain.RegisterSaleRequest{
		Channel:     "marketplace-a",
		ProductName: "Case X",
		Quantity:    3,
		NetAmount:   decimal.RequireFromString("50"),
	}, ViewOptions{})
	require.NoError(t, err)

	assert.False(t, resp.Loss)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, "R$ 30.00", resp.Sale.TotalCost)
	assert.Equal(t, "R$ 20.00", resp.Sale.Profit)
	assert.NotEmpty(t, resp.Sale.ID)

	assert.Equal(t, "p1", inserted["product_id"], "venda gravada com o ID estável do produto")
	assert.Equal(t, "Case X", inserted["product_name"])
	assert.True(t, decimal.RequireFromString("30").Equal(inserted["total_cost"].(decimal.Decimal)))
	assert.Equal(t, fixedNow, inserted["sold_at"])

	t.Run("escrita invalida o snapshot", func(t *testing.T) {
		_, err := service.GetDashboard(context.Background(), ViewOptions{})
		require.NoError(t, err)
	})
}

func TestService_RegisterSale_lossAndUnknownProduct(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)
	store.EXPECT().Insert(gomock.Any(), domain.EntitySales, gomock.Any()).Return(nil).Times(2)

	loss, err := service.RegisterSale(context.Background(), domain.RegisterSaleRequest{
		Channel:   "walk-in",
		ProductID: "p1",
		Quantity:  5,
		NetAmount: decimal.RequireFromString("20"),
	}, ViewOptions{})
	require.NoError(t, err)
	assert.True(t, loss.Loss, "prejuízo é resultado válido")
	assert.Equal(t, "R$ -30.00", loss.Sale.Profit)

	// o cache foi invalidado, então a segunda venda recarrega o snapshot
	expectSnapshot(store, 1)

	ghost, err := service.RegisterSale(context.Background(), domain.RegisterSaleRequest{
		Channel:     "WhatsApp",
		ProductName: "Ghost",
		Quantity:    2,
		NetAmount:   decimal.RequireFromString("40"),
	}, ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelDirectMessage, ghost.Sale.Channel)
	assert.Equal(t, "R$ 0.00", ghost.Sale.TotalCost)
	assert.Equal(t, "R$ 40.00", ghost.Sale.Profit)
	require.Len(t, ghost.Warnings, 1)
	assert.Equal(t, domain.WarningUnmatchedReference, ghost.Warnings[0].Kind)
	assert.Equal(t, ghost.Sale.ID, ghost.Warnings[0].RecordID)
}

func TestService_RegisterSale_validation(t *testing.T) {
	service, _ := newTestService(t, time.Minute)

	tests := []struct {
		name  string
		req   domain.RegisterSaleRequest
		field string
	}{
		{
			name:  "canal desconhecido",
			req:   domain.RegisterSaleRequest{Channel: "telegram", ProductID: "p1", Quantity: 1},
			field: "channel",
		},
		{
			name:  "sem produto",
			req:   domain.RegisterSaleRequest{Channel: "walk-in", Quantity: 1},
			field: "product_id",
		},
		{
			name:  "quantidade zero",
			req:   domain.RegisterSaleRequest{Channel: "walk-in", ProductID: "p1"},
			field: "quantity",
		},
		{
			name: "valor líquido negativo",
			req: domain.RegisterSaleRequest{
				Channel: "walk-in", ProductID: "p1", Quantity: 1, NetAmount: decimal.NewFromInt(-1),
			},
			field: "net_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.RegisterSale(context.Background(), tt.req, ViewOptions{})
			assert.Nil(t, resp)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestService_RegisterSale_insertFails(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)
	storeErr := domain.NewStoreUnavailableError("insert", domain.EntitySales, errors.New("timeout"))
	store.EXPECT().Insert(gomock.Any(), domain.EntitySales, gomock.Any()).Return(storeErr)

	_, err := service.RegisterSale(context.Background(), domain.RegisterSaleRequest{
		Channel: "walk-in", ProductID: "p1", Quantity: 1, NetAmount: decimal.NewFromInt(15),
	}, ViewOptions{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestService_CreateProduct(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	expectSnapshot(store, 1)

	store.EXPECT().
		Insert(gomock.Any(), domain.EntityProducts, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Entity, record domain.Record) error {
			assert.Equal(t, "Carregador", record["name"])
			assert.NotEmpty(t, record["id"])
			return nil
		})

	view, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{
		SKU:       "CG-1",
		Name:      " Carregador ",
		UnitCost:  decimal.RequireFromString("12.5"),
		UnitPrice: decimal.RequireFromString("39.9"),
	}, ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Carregador", view.Name)
	assert.Equal(t, "R$ 12.50", view.UnitCost)

	t.Run("nome duplicado", func(t *testing.T) {
		expectSnapshot(store, 1)
		_, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{Name: "Case X"}, ViewOptions{})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("custo negativo", func(t *testing.T) {
		_, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{
			Name: "Outro", UnitCost: decimal.NewFromInt(-1),
		}, ViewOptions{})
		assert.ErrorIs(t, err, ErrNegativeValue)
	})
}

func TestService_CreateLedgerEntry(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	due := time.Date(2026, 10, 20, 0, 0, 0, 0, saoPaulo)

	store.EXPECT().
		Insert(gomock.Any(), domain.EntityLedgerEntries, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Entity, record domain.Record) error {
			assert.Equal(t, "payable", record["kind"])
			assert.Equal(t, "pending", record["status"])
			assert.Equal(t, "2026-10-20", record["due_date"])
			return nil
		})

	view, err := service.CreateLedgerEntry(context.Background(), domain.CreateLedgerEntryRequest{
		Description: "Fornecedor",
		Kind:        "Saída (Pagar)",
		Amount:      decimal.NewFromInt(300),
		DueDate:     &due,
	}, ViewOptions{Privacy: true})
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerPayable, view.Kind)
	assert.Equal(t, "R$ ****", view.Amount)
	assert.Equal(t, "2026-10-20", view.DueDate)

	t.Run("tipo inválido", func(t *testing.T) {
		_, err := service.CreateLedgerEntry(context.Background(), domain.CreateLedgerEntryRequest{
			Description: "X", Kind: "transferência",
		}, ViewOptions{})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestService_ListDailySummaries(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityDailySummaries).Return([]domain.Record{
		{"date": "2026-10-14", "revenue": "100", "profit": "70", "margin_pct": "70", "sales_count": 1},
	}, nil)

	views, err := service.ListDailySummaries(context.Background(), ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, []domain.DailySummaryView{
		{Date: "2026-10-14", Revenue: "R$ 100.00", Profit: "R$ 70.00", MarginPct: "70.00", SalesCount: 1},
	}, views)
}

func TestService_calendarDatesFromDriver(t *testing.T) {
	// lib/pq entrega colunas DATE como meia-noite UTC
	driverDate, err := pq.ParseTimestamp(nil, "2026-10-14")
	require.NoError(t, err)

	service, store := newTestService(t, time.Minute)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityDailySummaries).Return([]domain.Record{
		{"date": driverDate, "revenue": "100", "profit": "70", "margin_pct": "70", "sales_count": 1},
	}, nil)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityProducts).Return(nil, nil)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntitySales).Return(nil, nil)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityLedgerEntries).Return([]domain.Record{
		{"id": "l1", "description": "Fornecedor", "kind": "payable", "amount": "100", "due_date": driverDate},
	}, nil)

	summaries, err := service.ListDailySummaries(context.Background(), ViewOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2026-10-14", summaries[0].Date)

	entries, err := service.ListLedgerEntries(context.Background(), ViewOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-10-14", entries[0].DueDate)
}

func TestService_CreateLedgerEntry_dueDateKeepsCalendarDay(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	due := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	store.EXPECT().
		Insert(gomock.Any(), domain.EntityLedgerEntries, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Entity, record domain.Record) error {
			assert.Equal(t, "2026-10-20", record["due_date"])
			return nil
		})

	view, err := service.CreateLedgerEntry(context.Background(), domain.CreateLedgerEntryRequest{
		Description: "Fornecedor",
		Kind:        "payable",
		Amount:      decimal.NewFromInt(300),
		DueDate:     &due,
	}, ViewOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", view.DueDate)
}

func TestService_GetDashboard_zombiesAndGoals(t *testing.T) {
	service, store := newTestService(t, time.Minute)
	service.goals = config.Goals{DailyAmount: decimal.NewFromInt(100), MonthlyAmount: decimal.NewFromInt(1000)}

	store.EXPECT().FetchAll(gomock.Any(), domain.EntityProducts).Return([]domain.Record{
		{"id": "p1", "name": "Case X", "unit_cost": "10", "unit_price": "25"},
		{"id": "p2", "name": "Fone", "unit_cost": "30", "unit_price": "80"},
		{"id": "p3", "name": "Cabo", "unit_cost": "5", "unit_price": "15"},
	}, nil)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntitySales).Return([]domain.Record{
		{"id": "s1", "sold_at": "2026-10-15T10:00:00-03:00", "product_id": "p1", "quantity": 1, "net_amount": "50", "total_cost": "10"},
		{"id": "s2", "sold_at": "2026-07-10T10:00:00-03:00", "product_name": "Fone", "quantity": 1, "net_amount": "80", "total_cost": "30"},
	}, nil)
	store.EXPECT().FetchAll(gomock.Any(), domain.EntityLedgerEntries).Return(nil, nil)

	view, err := service.GetDashboard(context.Background(), ViewOptions{})
	require.NoError(t, err)

	assert.Equal(t, 75, view.HealthScore)
	require.Len(t, view.ZombieProducts, 2)
	assert.Equal(t, "Fone", view.ZombieProducts[0].ProductName)
	assert.Equal(t, "2026-07-10T10:00:00-03:00", view.ZombieProducts[0].LastSoldAt)
	assert.Equal(t, "Cabo", view.ZombieProducts[1].ProductName)
	assert.Empty(t, view.ZombieProducts[1].LastSoldAt, "nunca vendeu")

	require.NotNil(t, view.Goals)
	assert.Equal(t, domain.GoalsView{
		DailyTarget:        "R$ 100.00",
		DailyProgressPct:   "50.00",
		MonthlyRevenue:     "R$ 50.00",
		MonthlyTarget:      "R$ 1,000.00",
		MonthlyProgressPct: "5.00",
	}, *view.Goals)

	t.Run("privacidade mascara os valores das metas", func(t *testing.T) {
		masked, err := service.GetDashboard(context.Background(), ViewOptions{Privacy: true})
		require.NoError(t, err)
		assert.Equal(t, "R$ ****", masked.Goals.DailyTarget)
		assert.Equal(t, "R$ ****", masked.Goals.MonthlyRevenue)
		assert.Equal(t, "R$ ****", masked.Goals.MonthlyTarget)
		assert.Equal(t, "50.00", masked.Goals.DailyProgressPct)
	})
}
