package pagination_test

import (
	"testing"
	"time"

	"github.com/fleetvision/fleet_backoffice/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryTokenRoundTrip(t *testing.T) {
	entryDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	token := pagination.EncodeEntryToken(entryDate, 42, "entry-42")
	require.NotEmpty(t, token)

	gotDate, gotNumber, gotID, err := pagination.DecodeEntryToken(token)
	require.NoError(t, err)
	assert.True(t, gotDate.Equal(entryDate))
	assert.Equal(t, int64(42), gotNumber)
	assert.Equal(t, "entry-42", gotID)
}

func TestEntryTokenRoundTrip_DraftWithoutNumber(t *testing.T) {
	// Drafts carry number 0; the entry id alone distinguishes them.
	entryDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	token := pagination.EncodeEntryToken(entryDate, 0, "draft-a")

	_, gotNumber, gotID, err := pagination.DecodeEntryToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gotNumber)
	assert.Equal(t, "draft-a", gotID)
}

func TestDecodeEntryToken_Invalid(t *testing.T) {
	_, _, _, err := pagination.DecodeEntryToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separators.
	_, _, _, err = pagination.DecodeEntryToken("bm8tc2VwYXJhdG9y")
	assert.Error(t, err)
}

func TestCodeTokenRoundTrip(t *testing.T) {
	token := pagination.EncodeCodeToken("1101")
	got, err := pagination.DecodeCodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1101", got)

	_, err = pagination.DecodeCodeToken("%%%")
	assert.Error(t, err)
}
