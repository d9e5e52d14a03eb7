package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/usecases/billing"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
	"github.com/adpilot/adpilot-api/pkg/middleware"
)

// Stripe recommends capping webhook bodies at 64KB
const maxWebhookBodyBytes = 65536

type CheckoutRequest struct {
	PackID string `json:"pack_id"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// ListCreditPacks returns the purchasable credit packs
func ListCreditPacks(service billing.PaymentProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(service.ListPacks())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

// CreateCheckout opens a Stripe Checkout session for a credit pack and
// returns the redirect URL
func CreateCheckout(service billing.PaymentProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCheckout")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to decode request", nil)
			return
		}

		if req.PackID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "pack_id is required", nil)
			return
		}

		checkoutURL, err := service.CreateCheckoutSession(userClaims.UserID, req.PackID)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, billing.ErrUnknownPack) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownPack, "Unknown credit pack", map[string]any{
					"pack_id": req.PackID,
				})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to create checkout session", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CheckoutResponse{URL: checkoutURL})
	}
}

// StripeWebhook receives payment events from Stripe. The route skips the
// auth middleware; the payload is authenticated by its signature instead.
func StripeWebhook(service billing.PaymentProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to read webhook payload", nil)
			return
		}

		err = service.HandleWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, billing.ErrInvalidSignature):
				apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "Webhook signature verification failed", nil)

			case errors.Is(err, billing.ErrInvalidEvent):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Malformed webhook event", nil)

			default:
				// Non-2xx makes Stripe retry the delivery later
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to process webhook event", nil)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
