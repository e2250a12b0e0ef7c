package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfirmationCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := GenerateConfirmationCode()
		require.NoError(t, err)

		assert.Len(t, code, ConfirmationCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(ConfirmationCodeAlphabet, c),
				"unexpected character %q in code %s", c, code)
		}
		seen[code] = struct{}{}
	}

	// 100 draws from a 32^8 space colliding would point at a broken RNG.
	assert.Len(t, seen, 100)
}

func TestConfirmationCodeAlphabetExcludesAmbiguous(t *testing.T) {
	for _, c := range "IO01" {
		assert.NotContains(t, ConfirmationCodeAlphabet, string(c))
	}
}

func TestBookingBlockedNights(t *testing.T) {
	b := &Booking{CheckIn: "2026-07-01", CheckOut: "2026-07-04"}

	nights := b.BlockedNights()
	require.Len(t, nights, 3)
	assert.Equal(t, "2026-07-01", nights[0].String())
	assert.Equal(t, "2026-07-03", nights[2].String())
}

func TestBookingStatusTransitions(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeConfirmed())

	b.Status = StatusConfirmed
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeConfirmed())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())
}
