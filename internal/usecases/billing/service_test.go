package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v75"
	"go.uber.org/mock/gomock"

	"github.com/adpilot/adpilot-api/internal/config"
	"github.com/adpilot/adpilot-api/internal/domain"
	creditmocks "github.com/adpilot/adpilot-api/internal/usecases/crediting/mocks"
)

func checkoutEvent(t *testing.T, sess stripe.CheckoutSession) *stripe.Event {
	raw, err := json.Marshal(sess)
	assert.NoError(t, err)

	return &stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func paidSession() stripe.CheckoutSession {
	return stripe.CheckoutSession{
		ID:                "cs_test_123",
		ClientReferenceID: "42",
		PaymentStatus:     stripe.CheckoutSessionPaymentStatusPaid,
		Status:            stripe.CheckoutSessionStatusComplete,
		Metadata: map[string]string{
			"pack_id": "starter",
			"credits": "50",
		},
	}
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    func(t *testing.T) *stripe.Event
		setup    func(credits *creditmocks.MockCreditManager)
		validate func(t *testing.T, err error)
	}{
		{
			name: "completed checkout grants credits and marks the account paid",
			event: func(t *testing.T) *stripe.Event {
				return checkoutEvent(t, paidSession())
			},
			setup: func(credits *creditmocks.MockCreditManager) {
				credits.EXPECT().
					Grant(42, 50, domain.ActionCreditPurchase, "credit pack purchase (starter)", "cs_test_123").
					Return(true, nil)
				credits.EXPECT().MarkPaid(42).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "redelivered event applies nothing",
			event: func(t *testing.T) *stripe.Event {
				return checkoutEvent(t, paidSession())
			},
			setup: func(credits *creditmocks.MockCreditManager) {
				credits.EXPECT().
					Grant(42, 50, domain.ActionCreditPurchase, gomock.Any(), "cs_test_123").
					Return(false, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "unpaid session is skipped",
			event: func(t *testing.T) *stripe.Event {
				sess := paidSession()
				sess.PaymentStatus = stripe.CheckoutSessionPaymentStatusUnpaid
				return checkoutEvent(t, sess)
			},
			setup: func(credits *creditmocks.MockCreditManager) {},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "missing credits metadata is rejected",
			event: func(t *testing.T) *stripe.Event {
				sess := paidSession()
				sess.Metadata = map[string]string{"pack_id": "starter"}
				return checkoutEvent(t, sess)
			},
			setup: func(credits *creditmocks.MockCreditManager) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			},
		},
		{
			name: "bad client reference is rejected",
			event: func(t *testing.T) *stripe.Event {
				sess := paidSession()
				sess.ClientReferenceID = "not-a-user"
				return checkoutEvent(t, sess)
			},
			setup: func(credits *creditmocks.MockCreditManager) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			},
		},
		{
			name: "unrelated events are ignored",
			event: func(t *testing.T) *stripe.Event {
				return &stripe.Event{Type: "invoice.created", Data: &stripe.EventData{Raw: []byte(`{}`)}}
			},
			setup: func(credits *creditmocks.MockCreditManager) {},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			credits := creditmocks.NewMockCreditManager(ctrl)
			tt.setup(credits)

			service := &Service{credits: credits, cfg: &config.Config{}}

			err := service.handleEvent(tt.event(t))
			tt.validate(t, err)
		})
	}
}

func TestListPacks(t *testing.T) {
	service := NewService(nil, &config.Config{})

	packs := service.ListPacks()
	assert.Len(t, packs, 3)
	assert.Equal(t, "starter", packs[0].ID)

	for _, pack := range packs {
		assert.Greater(t, pack.Credits, 0)
		assert.Greater(t, pack.AmountCents, int64(0))
	}
}

func TestCreateCheckoutSessionUnknownPack(t *testing.T) {
	service := NewService(nil, &config.Config{})

	url, err := service.CreateCheckoutSession(42, "mega")
	assert.ErrorIs(t, err, ErrUnknownPack)
	assert.Empty(t, url)
}
