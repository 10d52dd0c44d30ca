// Package aggregating concentra as contas do painel: custo e lucro por venda,
// totais do dia, quebras por dimensão e contas a pagar. Tudo aqui é puro:
// recebe coleções já buscadas e nunca faz I/O.
package aggregating

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/dropos-api/internal/domain"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrNegativeUnitCost = errors.New("unit cost must not be negative")
	ErrUnknownDimension = errors.New("unknown dimension")
)

// ComputeSaleEconomics calcula o custo congelado e o lucro de uma venda.
// Produto ausente não é erro: o custo unitário vira zero e um aviso de
// referência não encontrada acompanha o resultado. Lucro negativo é válido.
func ComputeSaleEconomics(product *domain.Product, productRef string, quantity int, netAmount decimal.Decimal) (domain.SaleEconomics, error) {
	if quantity < 1 {
		return domain.SaleEconomics{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if netAmount.IsNegative() {
		return domain.SaleEconomics{}, fmt.Errorf("%w: net amount %s", ErrNegativeAmount, netAmount)
	}

	economics := domain.SaleEconomics{UnitCost: decimal.Zero}

	if product == nil {
		economics.Warnings = append(economics.Warnings, domain.NewUnmatchedReferenceWarning("", productRef))
	} else {
		if product.UnitCost.IsNegative() {
			return domain.SaleEconomics{}, fmt.Errorf("%w: product %s", ErrNegativeUnitCost, product.Name)
		}
		economics.UnitCost = product.UnitCost
	}

	economics.TotalCost = economics.UnitCost.Mul(decimal.NewFromInt(int64(quantity)))
	economics.Profit = netAmount.Sub(economics.TotalCost)

	return economics, nil
}
