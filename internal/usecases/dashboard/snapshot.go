package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/aggregating"
	"github.com/vfg2006/dropos-api/pkg/log"
)

const snapshotKey = "snapshot"

// Snapshot é uma leitura completa e já normalizada do store. Depois de
// montado não é mais alterado, então pode ser compartilhado entre requisições.
type Snapshot struct {
	Products      []domain.Product
	Catalog       *domain.Catalog
	Sales         []domain.Sale
	LedgerEntries []domain.LedgerEntry
	Warnings      []domain.Warning
	LoadedAt      time.Time
}

// SnapshotLoader lê produtos, vendas e lançamentos e guarda o resultado por
// um TTL. Escritas chamam Invalidate; a próxima leitura vai ao store.
type SnapshotLoader struct {
	store    repository.RecordStore
	cache    *cache.Cache
	ttl      time.Duration
	location *time.Location
	now      func() time.Time

	// loadMu evita leituras duplicadas quando o cache expira sob concorrência
	loadMu sync.Mutex
	// generation muda a cada Invalidate; leitura iniciada antes de uma escrita não é cacheada
	generation atomic.Uint64
}

// NewSnapshotLoader cria o carregador. ttl <= 0 desliga o cache.
func NewSnapshotLoader(store repository.RecordStore, ttl time.Duration, location *time.Location) *SnapshotLoader {
	if location == nil {
		location = time.UTC
	}

	loader := &SnapshotLoader{
		store:    store,
		ttl:      ttl,
		location: location,
		now:      time.Now,
	}
	if ttl > 0 {
		loader.cache = cache.New(ttl, 2*ttl)
	}

	return loader
}

// Load devolve o snapshot em cache ou lê o store. Qualquer erro do store,
// inclusive StoreUnavailableError, volta sem alteração e nada é cacheado.
func (l *SnapshotLoader) Load(ctx context.Context, refresh bool) (*Snapshot, error) {
	if !refresh {
		if snapshot, ok := l.cached(); ok {
			return snapshot, nil
		}
	}

	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	// outra requisição pode ter carregado enquanto esperávamos
	if !refresh {
		if snapshot, ok := l.cached(); ok {
			return snapshot, nil
		}
	}

	generation := l.generation.Load()
	snapshot, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if l.cache != nil && l.generation.Load() == generation {
		l.cache.Set(snapshotKey, snapshot, cache.DefaultExpiration)
	}

	return snapshot, nil
}

// Invalidate descarta o snapshot em cache
func (l *SnapshotLoader) Invalidate() {
	l.generation.Add(1)
	if l.cache != nil {
		l.cache.Delete(snapshotKey)
	}
}

func (l *SnapshotLoader) cached() (*Snapshot, bool) {
	if l.cache == nil {
		return nil, false
	}
	value, found := l.cache.Get(snapshotKey)
	if !found {
		return nil, false
	}
	snapshot, ok := value.(*Snapshot)
	return snapshot, ok
}

func (l *SnapshotLoader) fetch(ctx context.Context) (*Snapshot, error) {
	logger := log.ForContext(ctx)

	productRecords, err := l.store.FetchAll(ctx, domain.EntityProducts)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar produtos")
		return nil, err
	}

	saleRecords, err := l.store.FetchAll(ctx, domain.EntitySales)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas")
		return nil, err
	}

	ledgerRecords, err := l.store.FetchAll(ctx, domain.EntityLedgerEntries)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar lançamentos")
		return nil, err
	}

	products, productWarnings := aggregating.NormalizeProducts(productRecords)
	catalog := domain.NewCatalog(products)
	sales, saleWarnings := aggregating.NormalizeSales(saleRecords, catalog, l.location)
	entries, ledgerWarnings := aggregating.NormalizeLedgerEntries(ledgerRecords, l.location)

	warnings := make([]domain.Warning, 0, len(productWarnings)+len(saleWarnings)+len(ledgerWarnings))
	warnings = append(warnings, productWarnings...)
	warnings = append(warnings, saleWarnings...)
	warnings = append(warnings, ledgerWarnings...)

	for _, w := range warnings {
		logger.WithFields(log.Fields{
			"kind":      w.Kind,
			"entity":    w.Entity,
			"record_id": w.RecordID,
		}).Warn(w.Message)
	}

	logger.Debugf("Snapshot carregado: %d produtos, %d vendas, %d lançamentos, %d avisos",
		len(products), len(sales), len(entries), len(warnings))

	return &Snapshot{
		Products:      products,
		Catalog:       catalog,
		Sales:         sales,
		LedgerEntries: entries,
		Warnings:      warnings,
		LoadedAt:      l.now().In(l.location),
	}, nil
}
