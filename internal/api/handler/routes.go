package handler

import (
	"net/http"

	"github.com/vfg2006/dropos-api/internal/api/handler/router"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales/breakdown",
			Method:  http.MethodGet,
			Handler: GetBreakdown(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: RegisterSale(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/ledger",
			Method:  http.MethodGet,
			Handler: ListLedgerEntries(service),
		},
		{
			Path:    "/v1/ledger",
			Method:  http.MethodPost,
			Handler: CreateLedgerEntry(service),
		},
		{
			Path:    "/v1/ledger/pending-payables",
			Method:  http.MethodGet,
			Handler: GetPendingPayables(service),
		},
		{
			Path:    "/v1/summaries",
			Method:  http.MethodGet,
			Handler: ListDailySummaries(service),
		},
	}
}

func Session() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session/reduce",
			Method:  http.MethodPost,
			Handler: ReduceSession(),
		},
	}
}

func CronJobs(syncer SummarySyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/daily-summary/run",
			Method:  http.MethodPost,
			Handler: RunDailySummaryJob(syncer),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(syncer),
		},
	}
}
