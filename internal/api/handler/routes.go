package handler

import (
	"net/http"

	"github.com/nexgestao/analytics-api/internal/api/handler/router"
	"github.com/nexgestao/analytics-api/internal/usecases/authenticating"
	"github.com/nexgestao/analytics-api/internal/usecases/exporting"
	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
	"github.com/nexgestao/analytics-api/pkg/middleware"
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
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/kpis",
			Method:      http.MethodGet,
			Handler:     GetDashboardKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/revenue-series",
			Method:      http.MethodGet,
			Handler:     GetRevenueSeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/status-distribution",
			Method:      http.MethodGet,
			Handler:     GetStatusDistribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/ranking",
			Method:      http.MethodGet,
			Handler:     GetClientRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/forecast",
			Method:      http.MethodGet,
			Handler:     GetRevenueForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights",
			Method:      http.MethodGet,
			Handler:     GetInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/orders",
			Method:      http.MethodGet,
			Handler:     ExportOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/kpis",
			Method:      http.MethodGet,
			Handler:     ExportKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/ranking",
			Method:      http.MethodGet,
			Handler:     ExportRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
