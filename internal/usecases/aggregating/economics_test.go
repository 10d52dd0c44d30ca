package aggregating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dropos-api/internal/domain"
)

func TestComputeSaleEconomics(t *testing.T) {
	caseX := &domain.Product{ID: "p1", Name: "Case X", UnitCost: dec("10")}

	tests := []struct {
		name         string
		product      *domain.Product
		ref          string
		quantity     int
		net          string
		wantCost     string
		wantProfit   string
		wantLoss     bool
		wantWarnings int
	}{
		{
			name:       "venda com lucro",
			product:    caseX,
			ref:        "Case X",
			quantity:   3,
			net:        "50",
			wantCost:   "30",
			wantProfit: "20",
		},
		{
			name:       "venda com prejuízo é válida",
			product:    caseX,
			ref:        "Case X",
			quantity:   5,
			net:        "20",
			wantCost:   "50",
			wantProfit: "-30",
			wantLoss:   true,
		},
		{
			name:       "custo com centavos",
			product:    &domain.Product{Name: "Cabo", UnitCost: dec("3.33")},
			ref:        "Cabo",
			quantity:   3,
			net:        "10",
			wantCost:   "9.99",
			wantProfit: "0.01",
		},
		{
			name:         "produto desconhecido assume custo zero com aviso",
			product:      nil,
			ref:          "Ghost",
			quantity:     2,
			net:          "40",
			wantCost:     "0",
			wantProfit:   "40",
			wantWarnings: 1,
		},
		{
			name:       "valor líquido zero",
			product:    caseX,
			ref:        "Case X",
			quantity:   1,
			net:        "0",
			wantCost:   "10",
			wantProfit: "-10",
			wantLoss:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSaleEconomics(tt.product, tt.ref, tt.quantity, dec(tt.net))
			require.NoError(t, err)

			assertDecimal(t, tt.wantCost, got.TotalCost)
			assertDecimal(t, tt.wantProfit, got.Profit)
			assert.Equal(t, tt.wantLoss, got.IsLoss())
			require.Len(t, got.Warnings, tt.wantWarnings)
			if tt.wantWarnings > 0 {
				assert.Equal(t, domain.WarningUnmatchedReference, got.Warnings[0].Kind)
				assert.Equal(t, tt.ref, got.Warnings[0].Value)
			}
		})
	}
}

func TestComputeSaleEconomics_propertyOverGrid(t *testing.T) {
	for _, cost := range []string{"0", "0.01", "7.5", "199.99"} {
		for quantity := 1; quantity <= 4; quantity++ {
			for _, net := range []string{"0", "15", "1000.10"} {
				product := &domain.Product{Name: "X", UnitCost: dec(cost)}
				got, err := ComputeSaleEconomics(product, "X", quantity, dec(net))
				require.NoError(t, err)

				wantCost := dec(cost).Mul(decimal.NewFromInt(int64(quantity)))
				assert.True(t, wantCost.Equal(got.TotalCost))
				assert.True(t, dec(net).Sub(wantCost).Equal(got.Profit))
			}
		}
	}
}

func TestComputeSaleEconomics_invalidInput(t *testing.T) {
	product := &domain.Product{Name: "X", UnitCost: dec("1")}

	_, err := ComputeSaleEconomics(product, "X", 0, dec("10"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeSaleEconomics(product, "X", 1, dec("-1"))
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ComputeSaleEconomics(&domain.Product{Name: "Y", UnitCost: dec("-2")}, "Y", 1, dec("10"))
	assert.ErrorIs(t, err, ErrNegativeUnitCost)
}
