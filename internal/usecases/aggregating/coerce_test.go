package aggregating

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	d := dec("7.25")

	tests := []struct {
		name   string
		input  any
		want   string
		wantOK bool
	}{
		{name: "texto", input: "12.34", want: "12.34", wantOK: true},
		{name: "texto com espaços", input: "  5 ", want: "5", wantOK: true},
		{name: "vírgula decimal", input: "12,50", want: "12.5", wantOK: true},
		{name: "bytes do driver", input: []byte("99.90"), want: "99.9", wantOK: true},
		{name: "json.Number", input: json.Number("3.5"), want: "3.5", wantOK: true},
		{name: "float", input: 10.5, want: "10.5", wantOK: true},
		{name: "int", input: 42, want: "42", wantOK: true},
		{name: "int64", input: int64(-3), want: "-3", wantOK: true},
		{name: "decimal", input: d, want: "7.25", wantOK: true},
		{name: "ponteiro de decimal", input: &d, want: "7.25", wantOK: true},
		{name: "nil", input: nil, want: "0"},
		{name: "vazio", input: "", want: "0"},
		{name: "texto inválido", input: "abc", want: "0"},
		{name: "milhar ambíguo", input: "1,234.50", want: "0"},
		{name: "NaN", input: math.NaN(), want: "0"},
		{name: "infinito", input: math.Inf(1), want: "0"},
		{name: "booleano", input: true, want: "0"},
		{name: "ponteiro nil", input: (*decimal.Decimal)(nil), want: "0"},
		{name: "struct", input: struct{}{}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	q, ok := ParseQuantity("3")
	assert.True(t, ok)
	assert.Equal(t, 3, q)

	q, ok = ParseQuantity(2.0)
	assert.True(t, ok)
	assert.Equal(t, 2, q)

	_, ok = ParseQuantity("3.5")
	assert.False(t, ok)

	_, ok = ParseQuantity(nil)
	assert.False(t, ok)
}

func TestParseTime(t *testing.T) {
	t.Run("data sem fuso é interpretada no fuso de operação", func(t *testing.T) {
		got, ok := ParseTime("2026-10-15", saoPaulo)
		assert.True(t, ok)
		assert.True(t, got.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, saoPaulo)))
	})

	t.Run("timestamp com fuso preserva o instante", func(t *testing.T) {
		got, ok := ParseTime("2026-10-15T10:00:00Z", saoPaulo)
		assert.True(t, ok)
		assert.True(t, got.Equal(time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("formato do postgres", func(t *testing.T) {
		got, ok := ParseTime([]byte("2026-10-15 08:30:00.123456-03"), nil)
		assert.True(t, ok)
		assert.Equal(t, 11, got.UTC().Hour())
	})

	t.Run("time.Time", func(t *testing.T) {
		now := time.Now()
		got, ok := ParseTime(now, saoPaulo)
		assert.True(t, ok)
		assert.True(t, got.Equal(now))
	})

	t.Run("inválidos", func(t *testing.T) {
		for _, v := range []any{nil, "", "ontem", 12, time.Time{}} {
			_, ok := ParseTime(v, saoPaulo)
			assert.False(t, ok, "%v", v)
		}
	})
}

func TestParseCalendarDate(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name   string
		input  any
		want   string
		wantOK bool
	}{
		{name: "meia-noite UTC do driver", input: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), want: "2026-10-14", wantOK: true},
		{name: "texto do PostgREST", input: "2026-10-14", want: "2026-10-14", wantOK: true},
		{name: "bytes", input: []byte("2026-10-14"), want: "2026-10-14", wantOK: true},
		{name: "vazio", input: "", wantOK: false},
		{name: "ilegível", input: "amanhã", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCalendarDate(tt.input, brt)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, got.In(brt).Format(time.DateOnly))
			assert.Equal(t, brt, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}
