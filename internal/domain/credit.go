package domain

import "time"

// CreditAction is the business reason recorded with each ledger entry.
type CreditAction string

const (
	ActionCampaignCreation CreditAction = "campaign_creation"
	ActionAIOptimization   CreditAction = "ai_optimization"
	ActionImageGeneration  CreditAction = "image_generation"
	ActionCreditPurchase   CreditAction = "credit_purchase"
	ActionCreditRefund     CreditAction = "credit_refund"
	ActionMetaAdGeneration CreditAction = "meta_ad_generation"
	ActionWelcomeGrant     CreditAction = "welcome_grant"
)

// CreditAccount is the denormalized balance view of a user's profile row.
// Balance must never go negative as a result of a successful consume.
type CreditAccount struct {
	UserID    int       `json:"user_id"`
	Balance   int       `json:"balance"`
	HasPaid   bool      `json:"has_paid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreditLedgerEntry is one append-only row of a user's usage history.
// Negative amounts are consumption, positive amounts refunds or grants.
type CreditLedgerEntry struct {
	ID          string       `json:"id"`
	UserID      int          `json:"user_id"`
	Amount      int          `json:"amount"`
	Action      CreditAction `json:"action"`
	Description string       `json:"description"`
	ReferenceID *string      `json:"reference_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
