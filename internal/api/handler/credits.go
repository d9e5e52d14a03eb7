package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/adpilot-api/internal/domain"
	"github.com/adpilot/adpilot-api/internal/usecases/crediting"
	"github.com/adpilot/adpilot-api/pkg/apiErrors"
	"github.com/adpilot/adpilot-api/pkg/middleware"
	"github.com/adpilot/adpilot-api/pkg/utils"
)

// GetMyCredits returns the credit account of the authenticated user
func GetMyCredits(service crediting.CreditManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		account, err := service.Balance(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, crediting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Credit account not found", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch credit account", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(account)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

// GetCreditHistory returns the ledger entries of the authenticated user,
// most recent first
func GetCreditHistory(service crediting.CreditManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		from, err := utils.ParseDate(r.URL.Query().Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid 'from' date, expected YYYY-MM-DD", nil)
			return
		}

		to, err := utils.ParseDate(r.URL.Query().Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid 'to' date, expected YYYY-MM-DD", nil)
			return
		}

		entries, err := service.History(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, crediting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Credit account not found", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch credit history", nil)
			return
		}

		entries = filterEntriesByPeriod(entries, from, to)

		if entries == nil {
			entries = []*domain.CreditLedgerEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(entries)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to write response", nil)
			return
		}
	}
}

// filterEntriesByPeriod keeps ledger entries within [from, to]. A zero bound
// leaves that side open; the "to" date is inclusive of the whole day.
func filterEntriesByPeriod(entries []*domain.CreditLedgerEntry, from, to *time.Time) []*domain.CreditLedgerEntry {
	if (from == nil || from.IsZero()) && (to == nil || to.IsZero()) {
		return entries
	}

	filtered := make([]*domain.CreditLedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if from != nil && !from.IsZero() && entry.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !to.IsZero() && !entry.CreatedAt.Before(to.AddDate(0, 0, 1)) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered
}
