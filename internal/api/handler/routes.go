package handler

import (
	"net/http"

	"github.com/adpilot/adpilot-api/infrastructure/repository"
	"github.com/adpilot/adpilot-api/internal/api/handler/router"
	"github.com/adpilot/adpilot-api/internal/usecases/authenticating"
	"github.com/adpilot/adpilot-api/internal/usecases/billing"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
	"github.com/adpilot/adpilot-api/internal/usecases/generating"
	"github.com/adpilot/adpilot-api/pkg/middleware"
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
			Handler: Register(service),
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
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Generation(service generating.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/generations",
			Method:      http.MethodPost,
			Handler:     Generate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Credits(service crediting.CreditManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/credits",
			Method:      http.MethodGet,
			Handler:     GetMyCredits(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/credits/history",
			Method:      http.MethodGet,
			Handler:     GetCreditHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Billing(service billing.PaymentProcessor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/billing/packs",
			Method:      http.MethodGet,
			Handler:     ListCreditPacks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/billing/checkout",
			Method:      http.MethodPost,
			Handler:     CreateCheckout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// No role middleware: Stripe authenticates with its signature
			Path:    "/v1/webhooks/stripe",
			Method:  http.MethodPost,
			Handler: StripeWebhook(service),
		},
	}
}

func Prompts(repo repository.PromptRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prompts",
			Method:      http.MethodGet,
			Handler:     ListPrompts(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/prompts/:key",
			Method:      http.MethodGet,
			Handler:     GetPrompt(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/prompts/:key",
			Method:      http.MethodPut,
			Handler:     UpdatePrompt(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
