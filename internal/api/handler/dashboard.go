package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
	"github.com/vfg2006/dropos-api/pkg/log"
	"github.com/vfg2006/dropos-api/pkg/utils"
)

func GetDashboard(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := viewOptions(r)

		view, err := service.GetDashboard(r.Context(), opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"warnings": len(view.Warnings),
			"privacy":  opts.Privacy,
		}).Debug("Painel montado")

		writeJSON(w, r, http.StatusOK, view)
	}
}

func GetBreakdown(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("dimension")
		if raw == "" {
			raw = string(domain.DimensionDayOfWeek)
		}

		dimension, ok := domain.ParseDimension(raw)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dimensão inválida", map[string]any{
				"accepted": []domain.Dimension{
					domain.DimensionDayOfWeek,
					domain.DimensionCalendarDate,
					domain.DimensionChannel,
				},
			})
			return
		}

		view, err := service.GetBreakdown(r.Context(), dimension, viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func GetPendingPayables(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.GetPendingPayables(r.Context(), viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

// ListDailySummaries aceita start_date e end_date (YYYY-MM-DD), ambos inclusivos
func ListDailySummaries(service dashboard.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"), time.UTC)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"), time.UTC)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida", nil)
			return
		}

		summaries, err := service.ListDailySummaries(r.Context(), viewOptions(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, filterSummaries(summaries, startDate, endDate))
	}
}

// filterSummaries compara as datas como texto; YYYY-MM-DD ordena igual ao calendário
func filterSummaries(summaries []domain.DailySummaryView, startDate, endDate *time.Time) []domain.DailySummaryView {
	filtered := make([]domain.DailySummaryView, 0, len(summaries))
	for _, s := range summaries {
		if startDate != nil && s.Date < startDate.Format(time.DateOnly) {
			continue
		}
		if endDate != nil && s.Date > endDate.Format(time.DateOnly) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
