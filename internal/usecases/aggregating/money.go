package aggregating

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultMoneySymbol = "R$"
	DefaultMoneyMask   = "R$ ****"
)

// MoneyFormat é a convenção de moeda configurada. O valor zero usa os
// padrões (R$, en-US, R$ ****); prefira NewMoneyFormat.
type MoneyFormat struct {
	symbol   string
	mask     string
	printer  *message.Printer
	decimals string
}

// NewMoneyFormat monta a convenção. Idioma inválido cai para inglês.
func NewMoneyFormat(symbol, lang, mask string) MoneyFormat {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if mask == "" {
		mask = DefaultMoneyMask
	}
	printer := message.NewPrinter(tag)
	return MoneyFormat{
		symbol:   symbol,
		mask:     mask,
		printer:  printer,
		decimals: decimalSeparator(printer),
	}
}

var defaultMoneyFormat = NewMoneyFormat(DefaultMoneySymbol, "en-US", DefaultMoneyMask)

// decimalSeparator descobre o separador decimal do idioma
func decimalSeparator(printer *message.Printer) string {
	sample := printer.Sprintf("%.1f", 0.5)
	return strings.TrimSuffix(strings.TrimPrefix(sample, "0"), "5")
}

// Format é função pura dos dois argumentos: com privacy liga devolve sempre
// a máscara; sem ela, separador de milhar e exatamente duas casas.
func (f MoneyFormat) Format(value decimal.Decimal, privacy bool) string {
	if privacy {
		return f.Mask()
	}

	printer, decimals := f.printer, f.decimals
	if printer == nil {
		printer, decimals = defaultMoneyFormat.printer, defaultMoneyFormat.decimals
	}

	// só a parte inteira passa pelo printer; os centavos saem exatos do decimal
	rounded := value.Round(2)
	_, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	amount := printer.Sprintf("%d", rounded.Abs().IntPart()) + decimals + cents
	if rounded.IsNegative() {
		amount = "-" + amount
	}

	if f.symbol == "" {
		return amount
	}
	return f.symbol + " " + amount
}

// Mask devolve o marcador usado no modo privacidade
func (f MoneyFormat) Mask() string {
	if f.mask == "" {
		return DefaultMoneyMask
	}
	return f.mask
}

// FormatMoney formata com a convenção padrão (R$, agrupamento en-US)
func FormatMoney(value decimal.Decimal, privacy bool) string {
	return defaultMoneyFormat.Format(value, privacy)
}

// FormatPercent formata percentuais; margem não é valor monetário e não é mascarada
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(2)
}
