//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 8, 31, 14, 30, 0, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, gotTime.Equal(at), "expected %v, got %v", at, gotTime)
}

func TestDecodeAfterCursor_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!!not-base64!!!"},
		{
			name:   "unsupported version",
			cursor: base64.URLEncoding.EncodeToString([]byte("v9:1756650000000000-" + uuid.NewString())),
		},
		{
			name:   "missing separator",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:1756650000000000")),
		},
		{
			name:   "bad timestamp",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		},
		{
			name:   "bad uuid",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:1756650000000000-not-a-uuid")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "zero falls back to default", limit: 0, expected: 20},
		{name: "negative falls back to default", limit: -5, expected: 20},
		{name: "in range passes through", limit: 50, expected: 50},
		{name: "capped at maximum", limit: 500, expected: queries.MaxListLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, queries.ValidateLimit(tc.limit))
		})
	}
}
