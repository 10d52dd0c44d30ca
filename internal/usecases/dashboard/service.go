package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/aggregating"
	"github.com/vfg2006/dropos-api/pkg/log"
	"github.com/vfg2006/dropos-api/pkg/utils"
)

// topProductsLimit é o tamanho do card "curva ABC"
const topProductsLimit = 5

type Service struct {
	store    repository.RecordStore
	loader   *SnapshotLoader
	money    aggregating.MoneyFormat
	location *time.Location
	goals    config.Goals
	now      func() time.Time
}

var _ Dashboarder = (*Service)(nil)

// NewService cria o serviço do painel sobre o store configurado
func NewService(cfg *config.Config, store repository.RecordStore) *Service {
	location := cfg.App.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		store:    store,
		loader:   NewSnapshotLoader(store, cfg.Snapshot.TTL, location),
		money:    aggregating.NewMoneyFormat(cfg.Money.Symbol, cfg.Money.Language, cfg.Money.Mask),
		location: location,
		goals:    cfg.Goals,
		now:      time.Now,
	}
}

// WithClock troca o relógio usado para "hoje"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.loader.now = now
	return s
}

func (s *Service) today() time.Time {
	return s.now().In(s.location)
}

func (s *Service) GetDashboard(ctx context.Context, opts ViewOptions) (*domain.DashboardView, error) {
	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	totals := aggregating.AggregateTodayTotals(snapshot.Sales, s.today())
	pending := aggregating.ComputePendingPayables(snapshot.LedgerEntries)

	weekday, err := aggregating.AggregateByDimension(snapshot.Sales, domain.DimensionDayOfWeek, s.location)
	if err != nil {
		return nil, err
	}

	ranking := aggregating.RankProductsByProfit(snapshot.Sales, topProductsLimit)
	topProducts := make([]domain.ProductProfitView, 0, len(ranking))
	for _, p := range ranking {
		topProducts = append(topProducts, domain.ProductProfitView{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Profit:      s.money.Format(p.Profit, opts.Privacy),
		})
	}

	zombies := aggregating.FindZombieProducts(snapshot.Products, snapshot.Sales, s.now())
	zombieViews := make([]domain.ZombieProductView, 0, len(zombies))
	for _, z := range zombies {
		view := domain.ZombieProductView{ProductID: z.ProductID, ProductName: z.ProductName}
		if z.LastSoldAt != nil {
			view.LastSoldAt = z.LastSoldAt.In(s.location).Format(time.RFC3339)
		}
		zombieViews = append(zombieViews, view)
	}

	return &domain.DashboardView{
		RevenueToday:    s.money.Format(totals.Revenue, opts.Privacy),
		ProfitToday:     s.money.Format(totals.Profit, opts.Privacy),
		MarginPct:       aggregating.FormatPercent(totals.MarginPct),
		PendingPayables: s.money.Format(pending, opts.Privacy),
		SalesByWeekday:  s.dimensionViews(weekday, opts.Privacy),
		TopProducts:     topProducts,
		ActiveDays:      aggregating.CountActiveDays(snapshot.Sales, s.location),
		HealthScore:     aggregating.HealthScore(len(zombies)),
		ZombieProducts:  zombieViews,
		Goals:           s.goalsView(snapshot.Sales, totals.Revenue, opts.Privacy),
		PrivacyMode:     opts.Privacy,
		Warnings:        snapshot.Warnings,
		LoadedAt:        snapshot.LoadedAt,
	}, nil
}

// goalsView só aparece quando alguma meta está configurada
func (s *Service) goalsView(sales []domain.Sale, revenueToday decimal.Decimal, privacy bool) *domain.GoalsView {
	if !s.goals.DailyAmount.IsPositive() && !s.goals.MonthlyAmount.IsPositive() {
		return nil
	}

	month := aggregating.AggregateMonthTotals(sales, s.today())
	return &domain.GoalsView{
		DailyTarget:        s.money.Format(s.goals.DailyAmount, privacy),
		DailyProgressPct:   aggregating.FormatPercent(aggregating.GoalProgress(revenueToday, s.goals.DailyAmount)),
		MonthlyRevenue:     s.money.Format(month.Revenue, privacy),
		MonthlyTarget:      s.money.Format(s.goals.MonthlyAmount, privacy),
		MonthlyProgressPct: aggregating.FormatPercent(aggregating.GoalProgress(month.Revenue, s.goals.MonthlyAmount)),
	}
}

func (s *Service) GetBreakdown(ctx context.Context, dimension domain.Dimension, opts ViewOptions) (*domain.BreakdownView, error) {
	if _, ok := domain.ParseDimension(string(dimension)); !ok {
		return nil, NewValidationError("dimension", aggregating.ErrUnknownDimension)
	}

	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	totals, err := aggregating.AggregateByDimension(snapshot.Sales, dimension, s.location)
	if err != nil {
		return nil, err
	}

	return &domain.BreakdownView{
		Dimension: dimension,
		Items:     s.dimensionViews(totals, opts.Privacy),
	}, nil
}

func (s *Service) GetPendingPayables(ctx context.Context, opts ViewOptions) (*domain.PendingPayablesView, error) {
	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, e := range snapshot.LedgerEntries {
		if e.IsPendingPayable() {
			count++
		}
	}

	return &domain.PendingPayablesView{
		Total: s.money.Format(aggregating.ComputePendingPayables(snapshot.LedgerEntries), opts.Privacy),
		Count: count,
	}, nil
}

func (s *Service) ListSales(ctx context.Context, opts ViewOptions) ([]domain.SaleView, error) {
	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	views := make([]domain.SaleView, 0, len(snapshot.Sales))
	for _, sale := range snapshot.Sales {
		views = append(views, s.saleView(sale, opts.Privacy))
	}
	return views, nil
}

func (s *Service) ListProducts(ctx context.Context, opts ViewOptions) ([]domain.ProductView, error) {
	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ProductView, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		views = append(views, s.productView(p, opts.Privacy))
	}
	return views, nil
}

func (s *Service) ListLedgerEntries(ctx context.Context, opts ViewOptions) ([]domain.LedgerEntryView, error) {
	snapshot, err := s.loader.Load(ctx, opts.Refresh)
	if err != nil {
		return nil, err
	}

	views := make([]domain.LedgerEntryView, 0, len(snapshot.LedgerEntries))
	for _, e := range snapshot.LedgerEntries {
		views = append(views, s.ledgerEntryView(e, opts.Privacy))
	}
	return views, nil
}

// ListDailySummaries lê os fechamentos gravados pelo agendador. Não passa
// pelo snapshot: é dado derivado e muda só quando o job roda.
func (s *Service) ListDailySummaries(ctx context.Context, opts ViewOptions) ([]domain.DailySummaryView, error) {
	records, err := s.store.FetchAll(ctx, domain.EntityDailySummaries)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar fechamentos diários")
		return nil, err
	}

	summaries, warnings := aggregating.NormalizeDailySummaries(records, s.location)
	for _, w := range warnings {
		log.ForContext(ctx).Warn(w.String())
	}

	views := make([]domain.DailySummaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, domain.DailySummaryView{
			Date:       summary.Date.In(s.location).Format(time.DateOnly),
			Revenue:    s.money.Format(summary.Revenue, opts.Privacy),
			Profit:     s.money.Format(summary.Profit, opts.Privacy),
			MarginPct:  aggregating.FormatPercent(summary.MarginPct),
			SalesCount: summary.SalesCount,
		})
	}
	return views, nil
}

func (s *Service) RegisterSale(ctx context.Context, req domain.RegisterSaleRequest, opts ViewOptions) (*domain.RegisterSaleResponse, error) {
	channel, ok := domain.ParseChannel(req.Channel)
	if !ok {
		return nil, NewValidationError("channel", ErrInvalidValue)
	}
	if strings.TrimSpace(req.ProductID) == "" && strings.TrimSpace(req.ProductName) == "" {
		return nil, NewValidationError("product_id", ErrRequired)
	}
	if req.Quantity < 1 {
		return nil, NewValidationError("quantity", aggregating.ErrInvalidQuantity)
	}
	if req.NetAmount.IsNegative() {
		return nil, NewValidationError("net_amount", ErrNegativeValue)
	}
	if req.GrossAmount != nil && req.GrossAmount.IsNegative() {
		return nil, NewValidationError("gross_amount", ErrNegativeValue)
	}

	snapshot, err := s.loader.Load(ctx, false)
	if err != nil {
		return nil, err
	}

	sale := domain.Sale{
		SoldAt:      s.today(),
		Channel:     channel,
		ProductID:   strings.TrimSpace(req.ProductID),
		ProductName: strings.TrimSpace(req.ProductName),
		Quantity:    req.Quantity,
		NetAmount:   req.NetAmount,
	}
	if req.SoldAt != nil && !req.SoldAt.IsZero() {
		sale.SoldAt = req.SoldAt.In(s.location)
	}
	if req.GrossAmount != nil {
		sale.GrossAmount, sale.HasGross = *req.GrossAmount, true
	}

	product := snapshot.Catalog.Lookup(sale.ProductID, sale.ProductName)
	if product != nil {
		// a venda passa a apontar para o ID estável, o nome fica como retrato
		sale.ProductID = product.ID
		if sale.ProductName == "" {
			sale.ProductName = product.Name
		}
	}

	economics, err := aggregating.ComputeSaleEconomics(product, productRef(req), sale.Quantity, sale.NetAmount)
	if err != nil {
		return nil, NewValidationError("product", err)
	}
	sale.TotalCost = economics.TotalCost

	sale.ID, err = utils.GenerateID()
	if err != nil {
		return nil, NewValidationError("id", ErrGenerateID)
	}

	if err := s.store.Insert(ctx, domain.EntitySales, saleRecord(sale, s.now())); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar venda")
		return nil, err
	}
	s.loader.Invalidate()

	warnings := make([]domain.Warning, 0, len(economics.Warnings))
	for _, w := range economics.Warnings {
		w.RecordID = sale.ID
		warnings = append(warnings, w)
		log.ForContext(ctx).Warn(w.String())
	}

	return &domain.RegisterSaleResponse{
		Sale:     s.saleView(sale, opts.Privacy),
		Loss:     economics.IsLoss(),
		Warnings: warnings,
	}, nil
}

func productRef(req domain.RegisterSaleRequest) string {
	if id := strings.TrimSpace(req.ProductID); id != "" {
		return id
	}
	return strings.TrimSpace(req.ProductName)
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest, opts ViewOptions) (*domain.ProductView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name", ErrRequired)
	}
	if req.UnitCost.IsNegative() {
		return nil, NewValidationError("unit_cost", ErrNegativeValue)
	}
	if req.UnitPrice.IsNegative() {
		return nil, NewValidationError("unit_price", ErrNegativeValue)
	}

	snapshot, err := s.loader.Load(ctx, false)
	if err != nil {
		return nil, err
	}
	// nomes únicos mantêm a busca por nome das vendas antigas sem ambiguidade
	if snapshot.Catalog.Lookup("", name) != nil {
		return nil, NewValidationError("name", ErrDuplicateName)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewValidationError("id", ErrGenerateID)
	}

	product := domain.Product{
		ID:        id,
		SKU:       strings.TrimSpace(req.SKU),
		Name:      name,
		UnitCost:  req.UnitCost,
		UnitPrice: req.UnitPrice,
		CreatedAt: s.now(),
	}

	if err := s.store.Insert(ctx, domain.EntityProducts, productRecord(product)); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao cadastrar produto")
		return nil, err
	}
	s.loader.Invalidate()

	view := s.productView(product, opts.Privacy)
	return &view, nil
}

func (s *Service) CreateLedgerEntry(ctx context.Context, req domain.CreateLedgerEntryRequest, opts ViewOptions) (*domain.LedgerEntryView, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, NewValidationError("description", ErrRequired)
	}
	kind, ok := domain.ParseLedgerKind(req.Kind)
	if !ok {
		return nil, NewValidationError("kind", ErrInvalidValue)
	}
	status, ok := domain.ParseLedgerStatus(req.Status)
	if !ok {
		return nil, NewValidationError("status", ErrInvalidValue)
	}
	if req.Amount.IsNegative() {
		return nil, NewValidationError("amount", ErrNegativeValue)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewValidationError("id", ErrGenerateID)
	}

	entry := domain.LedgerEntry{
		ID:          id,
		Description: description,
		Kind:        kind,
		Amount:      req.Amount,
		Status:      status,
	}
	if req.DueDate != nil {
		// vencimento é dia de calendário: vale o dia informado, no fuso em que veio
		due := aggregating.CalendarDate(*req.DueDate, s.location)
		entry.DueDate = &due
	}

	if err := s.store.Insert(ctx, domain.EntityLedgerEntries, ledgerEntryRecord(entry, s.now())); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar lançamento")
		return nil, err
	}
	s.loader.Invalidate()

	view := s.ledgerEntryView(entry, opts.Privacy)
	return &view, nil
}
