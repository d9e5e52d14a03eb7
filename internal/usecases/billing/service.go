package billing

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/webhook"

	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
)

// CreditPack is a purchasable bundle of credits.
type CreditPack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Credits     int    `json:"credits"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// Packs are fixed server-side so the checkout amount can never be tampered
// with from the client.
var creditPacks = map[string]CreditPack{
	"starter": {ID: "starter", Name: "Starter Pack", Credits: 50, AmountCents: 990, Currency: "usd"},
	"growth":  {ID: "growth", Name: "Growth Pack", Credits: 200, AmountCents: 2990, Currency: "usd"},
	"scale":   {ID: "scale", Name: "Scale Pack", Credits: 1000, AmountCents: 9990, Currency: "usd"},
}

// PaymentProcessor bridges Stripe checkout to the credit ledger.
type PaymentProcessor interface {
	ListPacks() []CreditPack
	CreateCheckoutSession(userID int, packID string) (string, error)
	HandleWebhookEvent(payload []byte, signature string) error
}

type Service struct {
	credits crediting.CreditManager
	cfg     *config.Config
}

func NewService(credits crediting.CreditManager, cfg *config.Config) PaymentProcessor {
	stripe.Key = cfg.Stripe.SecretKey

	return &Service{
		credits: credits,
		cfg:     cfg,
	}
}

func (s *Service) ListPacks() []CreditPack {
	packs := make([]CreditPack, 0, len(creditPacks))
	for _, id := range []string{"starter", "growth", "scale"} {
		packs = append(packs, creditPacks[id])
	}
	return packs
}

// CreateCheckoutSession opens a Stripe checkout for one credit pack and
// returns the hosted payment page URL. The user ID travels as the client
// reference so the webhook can route the grant.
func (s *Service) CreateCheckoutSession(userID int, packID string) (string, error) {
	pack, ok := creditPacks[packID]
	if !ok {
		return "", ErrUnknownPack
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(strconv.Itoa(userID)),
		SuccessURL:        stripe.String(s.cfg.Stripe.SuccessURL),
		CancelURL:         stripe.String(s.cfg.Stripe.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(pack.Currency),
					UnitAmount: stripe.Int64(pack.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(pack.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("pack_id", pack.ID)
	params.AddMetadata("credits", strconv.Itoa(pack.Credits))

	sess, err := session.New(params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"pack_id": packID,
			"error":   err.Error(),
		}).Error("billing: checkout session creation failed")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"pack_id":    packID,
		"session_id": sess.ID,
	}).Info("billing: checkout session created")

	return sess.URL, nil
}

// HandleWebhookEvent verifies the Stripe signature and applies the event.
func (s *Service) HandleWebhookEvent(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.Stripe.WebhookSecret)
	if err != nil {
		logrus.WithError(err).Warn("billing: webhook signature verification failed")
		return ErrInvalidSignature
	}

	return s.handleEvent(&event)
}

func (s *Service) handleEvent(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return ErrInvalidEvent
		}
		return s.handleCheckoutCompleted(&sess)
	default:
		logrus.WithField("type", event.Type).Debug("billing: ignoring webhook event")
		return nil
	}
}

// handleCheckoutCompleted grants the purchased credits. The grant is keyed
// by the checkout session ID, so Stripe redelivering the event never
// credits twice.
func (s *Service) handleCheckoutCompleted(sess *stripe.CheckoutSession) error {
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid ||
		sess.Status != stripe.CheckoutSessionStatusComplete {
		logrus.WithField("session_id", sess.ID).Debug("billing: checkout not settled yet, skipping")
		return nil
	}

	userID, err := strconv.Atoi(sess.ClientReferenceID)
	if err != nil {
		return ErrInvalidEvent
	}

	credits, err := strconv.Atoi(sess.Metadata["credits"])
	if err != nil || credits <= 0 {
		return ErrInvalidEvent
	}

	description := fmt.Sprintf("credit pack purchase (%s)", sess.Metadata["pack_id"])

	applied, err := s.credits.Grant(userID, credits, domain.ActionCreditPurchase, description, sess.ID)
	if err != nil {
		return err
	}

	if !applied {
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"session_id": sess.ID,
		}).Info("billing: duplicate webhook delivery, grant already applied")
		return nil
	}

	if err := s.credits.MarkPaid(userID); err != nil {
		logrus.WithField("user_id", userID).WithError(err).Error("billing: failed to flag account as paid")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"credits":    credits,
		"session_id": sess.ID,
	}).Info("billing: credit purchase applied")

	return nil
}
