package handler

import (
	"net/http"

	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/api/handler/router"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/suggesting"
	"github.com/vfg2006/ad-scaler-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(accountRepo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAdAccounts(accountRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AccountSettings(
	accountRepo repository.AccountRepository,
	settingsRepo repository.AccountSettingsRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/settings",
			Method:      http.MethodGet,
			Handler:     GetAccountSettings(settingsRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/settings",
			Method:      http.MethodPut,
			Handler:     UpdateAccountSettings(accountRepo, settingsRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Suggestions(lifecycle suggesting.Lifecycle) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/suggestions",
			Method:      http.MethodGet,
			Handler:     ListSuggestions(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suggestions/:id",
			Method:      http.MethodGet,
			Handler:     GetSuggestion(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suggestions/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveSuggestion(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/suggestions/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectSuggestion(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Analysis(service suggesting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/analysis/run",
			Method:      http.MethodPost,
			Handler:     RunAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
