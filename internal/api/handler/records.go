package handler

import (
	"net/http"

	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
	"github.com/vfg2006/dropos-api/pkg/log"
)

func ListSales(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context(), viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, sales)
	}
}

// RegisterSale grava a venda. Prejuízo e avisos voltam no corpo, não como erro.
func RegisterSale(service dashboard.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterSaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.RegisterSale(r.Context(), req, viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger := log.ForContext(r.Context()).WithField("record_id", resp.Sale.ID)
		if resp.Loss {
			logger.Warn("Venda registrada com prejuízo")
		} else {
			logger.Info("Venda registrada")
		}

		writeJSON(w, r, http.StatusCreated, resp)
	}
}

func ListProducts(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context(), viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, products)
	}
}

func CreateProduct(service dashboard.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if !decodeBody(w, r, &req) {
			return
		}

		product, err := service.CreateProduct(r.Context(), req, viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("record_id", product.ID).Info("Produto cadastrado")
		writeJSON(w, r, http.StatusCreated, product)
	}
}

func ListLedgerEntries(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListLedgerEntries(r.Context(), viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, entries)
	}
}

func CreateLedgerEntry(service dashboard.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateLedgerEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		entry, err := service.CreateLedgerEntry(r.Context(), req, viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("record_id", entry.ID).Info("Lançamento cadastrado")
		writeJSON(w, r, http.StatusCreated, entry)
	}
}
