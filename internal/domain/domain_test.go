package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChannel(t *testing.T) {
	cases := map[string]Channel{
		"Mercado Livre":  ChannelMarketplaceA,
		"shopee":         ChannelMarketplaceB,
		" WhatsApp ":     ChannelDirectMessage,
		"Balcão":         ChannelWalkIn,
		"walk-in":        ChannelWalkIn,
		"direct-message": ChannelDirectMessage,
	}
	for raw, want := range cases {
		got, ok := ParseChannel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	got, ok := ParseChannel("TikTok")
	assert.False(t, ok)
	assert.Equal(t, Channel("TikTok"), got)
}

func TestParseLedgerKindAndStatus(t *testing.T) {
	kind, ok := ParseLedgerKind("Saída (Pagar)")
	assert.True(t, ok)
	assert.Equal(t, LedgerPayable, kind)

	kind, ok = ParseLedgerKind("Entrada (Receber)")
	assert.True(t, ok)
	assert.Equal(t, LedgerReceivable, kind)

	_, ok = ParseLedgerKind("transfer")
	assert.False(t, ok)

	status, ok := ParseLedgerStatus("")
	assert.True(t, ok)
	assert.Equal(t, LedgerPending, status)

	status, ok = ParseLedgerStatus("Pago")
	assert.True(t, ok)
	assert.Equal(t, LedgerPaid, status)
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog([]Product{
		{ID: "p1", Name: "Case X"},
		{ID: "p2", Name: "Cabo USB"},
		{ID: "p3", Name: "Case X"},
	})

	assert.Equal(t, "p2", catalog.Lookup("p2", "qualquer").ID)
	assert.Equal(t, "p1", catalog.Lookup("", "Case X").ID, "nome duplicado resolve para o primeiro")
	assert.Equal(t, "p1", catalog.Lookup("removido", "Case X").ID, "id inexistente cai no nome")
	assert.Nil(t, catalog.Lookup("", "Ghost"))

	var empty *Catalog
	assert.Nil(t, empty.Lookup("p1", "Case X"))
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("dashboard: %w", NewStoreUnavailableError("fetch", EntitySales, cause))

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)

	var target *StoreUnavailableError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, EntitySales, target.Entity)
}

func TestEntity(t *testing.T) {
	assert.True(t, EntitySales.Valid())
	assert.False(t, Entity("users").Valid())
	assert.True(t, EntitySales.HasColumn("net_amount"))
	assert.False(t, EntitySales.HasColumn("password"))
	assert.Equal(t, "sold_at ASC", EntitySales.OrderBy())
}
