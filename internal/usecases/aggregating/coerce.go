package aggregating

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// layouts aceitos para datas vindas do store, do mais ao menos específico
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// ParseAmount converte um valor monetário vindo do store. Vazio ou ilegível
// retorna zero e ok=false; quem chama decide se isso merece um aviso.
func ParseAmount(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return value, true
	case *decimal.Decimal:
		if value == nil {
			return decimal.Zero, false
		}
		return *value, true
	case string:
		return parseAmountString(value)
	case []byte:
		return parseAmountString(string(value))
	case json.Number:
		return parseAmountString(value.String())
	case float64:
		return parseAmountFloat(value)
	case float32:
		return parseAmountFloat(float64(value))
	case bool:
		return decimal.Zero, false
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(n), true
}

func parseAmountFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func parseAmountString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err == nil {
		return d, true
	}

	// Versões antigas gravavam "12,50"
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1)); err == nil {
			return d, true
		}
	}

	return decimal.Zero, false
}

// ParseQuantity aceita apenas inteiros; "3" e 3.0 valem, "3.5" não
func ParseQuantity(v any) (int, bool) {
	d, ok := ParseAmount(v)
	if !ok || !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	return int(d.IntPart()), true
}

// ParseTime converte datas do store. Datas sem fuso são interpretadas em loc.
func ParseTime(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch value := v.(type) {
	case time.Time:
		return value, !value.IsZero()
	case *time.Time:
		if value == nil || value.IsZero() {
			return time.Time{}, false
		}
		return *value, true
	case []byte:
		return parseTimeString(string(value), loc)
	case string:
		return parseTimeString(value, loc)
	}

	return time.Time{}, false
}

// ParseCalendarDate lê colunas DATE. O driver entrega meia-noite UTC e o
// PostgREST entrega "YYYY-MM-DD"; em ambos o dia vale como está, sem
// conversão de fuso.
func ParseCalendarDate(v any, loc *time.Location) (time.Time, bool) {
	t, ok := ParseTime(v, loc)
	if !ok {
		return time.Time{}, false
	}
	return CalendarDate(t, loc), true
}

// CalendarDate fixa o dia de t (no fuso do próprio t) à meia-noite de loc
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func parseTimeString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// stringField lê um campo textual tolerando []byte e números
func stringField(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case []byte:
		return strings.TrimSpace(string(value))
	case fmt.Stringer:
		return value.String()
	}
	return strings.TrimSpace(cast.ToString(v))
}
