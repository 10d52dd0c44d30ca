package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateProductRequest é o comando vindo do formulário de catálogo
type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProductView é o produto como é exibido, com valores monetários já formatados
type ProductView struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitCost  string `json:"unit_cost"`
	UnitPrice string `json:"unit_price"`
}

// Catalog indexa os produtos pelo ID estável e, para linhas antigas, pelo nome
type Catalog struct {
	byID   map[string]*Product
	byName map[string]*Product
}

func NewCatalog(products []Product) *Catalog {
	catalog := &Catalog{
		byID:   make(map[string]*Product, len(products)),
		byName: make(map[string]*Product, len(products)),
	}

	for i := range products {
		p := &products[i]
		if p.ID != "" {
			catalog.byID[p.ID] = p
		}
		// Em nomes duplicados vale o primeiro cadastrado
		if _, exists := catalog.byName[p.Name]; p.Name != "" && !exists {
			catalog.byName[p.Name] = p
		}
	}

	return catalog
}

// Lookup resolve uma referência de venda: primeiro pelo ID, depois pelo nome
func (c *Catalog) Lookup(productID, productName string) *Product {
	if c == nil {
		return nil
	}
	if productID != "" {
		if p, ok := c.byID[productID]; ok {
			return p
		}
	}
	if productName != "" {
		if p, ok := c.byName[productName]; ok {
			return p
		}
	}
	return nil
}
