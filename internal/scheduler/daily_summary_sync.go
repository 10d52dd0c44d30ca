package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/aggregating"
)

// DailySummarySyncConfig representa a configuração do fechamento diário
type DailySummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailySummarySyncService fecha os dias anteriores em daily_summaries.
// O fechamento é dado derivado: rodar de novo o mesmo dia sobrescreve a linha.
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySummarySyncConfig
	store               repository.RecordStore
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncDays        int
}

func NewDailySummarySyncService(store repository.RecordStore, appConfig *config.Config) *DailySummarySyncService {
	syncConfig := DailySummarySyncConfig{
		CronSchedule: appConfig.DailySummary.CronSchedule,
		LookbackDays: appConfig.DailySummary.LookbackDays,
		SyncEnabled:  appConfig.DailySummary.Enabled,
	}
	if syncConfig.LookbackDays < 1 {
		syncConfig.LookbackDays = 1
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do fechamento diário carregada")

	return &DailySummarySyncService{
		scheduler: gocron.NewScheduler(location),
		config:    syncConfig,
		store:     store,
		location:  location,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do fechamento diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDailySummaries(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do fechamento diário")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDailySummaries envolve runSync com o controle de execução única
func (s *DailySummarySyncService) syncDailySummaries(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	days, err := s.runSync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncDays = days
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro no fechamento diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"days":     days,
	}).Info("Fechamento diário concluído")
}

// runSync lê as vendas, consolida cada dia do período e grava um fechamento
// por dia. Devolve quantos dias foram gravados.
func (s *DailySummarySyncService) runSync(ctx context.Context) (int, error) {
	productRecords, err := s.store.FetchAll(ctx, domain.EntityProducts)
	if err != nil {
		return 0, err
	}

	saleRecords, err := s.store.FetchAll(ctx, domain.EntitySales)
	if err != nil {
		return 0, err
	}

	products, _ := aggregating.NormalizeProducts(productRecords)
	sales, warnings := aggregating.NormalizeSales(saleRecords, domain.NewCatalog(products), s.location)
	if len(warnings) > 0 {
		logrus.WithField("warnings", len(warnings)).Warn("Vendas com avisos no fechamento diário")
	}

	written := 0
	for _, day := range s.getDatesToProcess() {
		totals := aggregating.AggregateDayTotals(sales, day)

		record := domain.Record{
			"date":        day.Format(time.DateOnly),
			"revenue":     totals.Revenue,
			"profit":      totals.Profit,
			"margin_pct":  totals.MarginPct.Round(2),
			"sales_count": totals.SalesCount,
			"updated_at":  s.now(),
		}

		if err := s.store.Upsert(ctx, domain.EntityDailySummaries, record, "date"); err != nil {
			return written, fmt.Errorf("erro ao gravar fechamento de %s: %w", day.Format(time.DateOnly), err)
		}
		written++

		logrus.WithFields(logrus.Fields{
			"date":        day.Format(time.DateOnly),
			"sales_count": totals.SalesCount,
		}).Debug("Fechamento gravado")
	}

	return written, nil
}

// getDatesToProcess devolve o início de cada dia do período, de ontem para trás
func (s *DailySummarySyncService) getDatesToProcess() []time.Time {
	today := s.now().In(s.location)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.location)

	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = midnight.AddDate(0, 0, -i-1)
	}
	return dates
}

// TriggerManualSync inicia manualmente o fechamento. Devolve false se já
// houver um em andamento.
func (s *DailySummarySyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento diário manual")
	go s.syncDailySummaries(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_sync_days":         s.lastSyncDays,
	}
}
