package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLedgerID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id, err := generateLedgerID()
		require.NoError(t, err)

		assert.Len(t, id, LedgerIDLength)
		for _, char := range id {
			assert.True(t, strings.ContainsRune(ledgerIDChars, char),
				"unexpected character %q in ledger ID", char)
		}

		assert.False(t, seen[id], "duplicate ledger ID %s", id)
		seen[id] = true
	}
}
