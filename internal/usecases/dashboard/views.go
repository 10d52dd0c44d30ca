package dashboard

import (
	"time"

	"github.com/vfg2006/dropos-api/internal/domain"
)

func (s *Service) dimensionViews(totals []domain.DimensionTotal, privacy bool) []domain.DimensionTotalView {
	views := make([]domain.DimensionTotalView, 0, len(totals))
	for _, t := range totals {
		views = append(views, domain.DimensionTotalView{
			Key:   t.Key,
			Total: s.money.Format(t.Total, privacy),
		})
	}
	return views
}

func (s *Service) saleView(sale domain.Sale, privacy bool) domain.SaleView {
	view := domain.SaleView{
		ID:          sale.ID,
		Channel:     sale.Channel,
		ProductID:   sale.ProductID,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		NetAmount:   s.money.Format(sale.NetAmount, privacy),
		TotalCost:   s.money.Format(sale.TotalCost, privacy),
		Profit:      s.money.Format(sale.Profit(), privacy),
	}
	if !sale.SoldAt.IsZero() {
		view.SoldAt = sale.SoldAt.In(s.location).Format(time.RFC3339)
	}
	if sale.HasGross {
		view.GrossAmount = s.money.Format(sale.GrossAmount, privacy)
		view.Fees = s.money.Format(sale.Fees(), privacy)
	}
	return view
}

func (s *Service) productView(p domain.Product, privacy bool) domain.ProductView {
	return domain.ProductView{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		UnitCost:  s.money.Format(p.UnitCost, privacy),
		UnitPrice: s.money.Format(p.UnitPrice, privacy),
	}
}

func (s *Service) ledgerEntryView(e domain.LedgerEntry, privacy bool) domain.LedgerEntryView {
	view := domain.LedgerEntryView{
		ID:          e.ID,
		Description: e.Description,
		Kind:        e.Kind,
		Amount:      s.money.Format(e.Amount, privacy),
		Status:      e.Status,
	}
	if e.DueDate != nil {
		view.DueDate = e.DueDate.In(s.location).Format(time.DateOnly)
	}
	return view
}

// Os registros gravados usam só as colunas canônicas. O lucro é gravado para
// quem lê a tabela direto, mas na leitura sempre é recalculado.

func saleRecord(sale domain.Sale, createdAt time.Time) domain.Record {
	record := domain.Record{
		"id":           sale.ID,
		"sold_at":      sale.SoldAt,
		"channel":      string(sale.Channel),
		"product_name": sale.ProductName,
		"quantity":     sale.Quantity,
		"net_amount":   sale.NetAmount,
		"total_cost":   sale.TotalCost,
		"profit":       sale.Profit(),
		"created_at":   createdAt,
	}
	if sale.ProductID != "" {
		record["product_id"] = sale.ProductID
	}
	if sale.HasGross {
		record["gross_amount"] = sale.GrossAmount
	}
	return record
}

func productRecord(p domain.Product) domain.Record {
	return domain.Record{
		"id":         p.ID,
		"sku":        p.SKU,
		"name":       p.Name,
		"unit_cost":  p.UnitCost,
		"unit_price": p.UnitPrice,
		"created_at": p.CreatedAt,
	}
}

func ledgerEntryRecord(e domain.LedgerEntry, createdAt time.Time) domain.Record {
	record := domain.Record{
		"id":          e.ID,
		"description": e.Description,
		"kind":        string(e.Kind),
		"amount":      e.Amount,
		"status":      string(e.Status),
		"created_at":  createdAt,
	}
	if e.DueDate != nil {
		record["due_date"] = e.DueDate.Format(time.DateOnly)
	}
	return record
}
