package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	saleDate := time.Date(2025, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(saleDate, 42)
	assert.NotEmpty(t, token)

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, saleDate.Equal(decodedDate))
	assert.Equal(t, int64(42), decodedID)

	// Non-UTC input comes back as the same instant.
	lagos := time.FixedZone("WAT", 3600)
	local := time.Date(2025, 1, 2, 9, 0, 0, 0, lagos)
	decodedDate, _, err = DecodeToken(EncodeToken(local, 1))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedDate))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.ErrorContains(t, err, "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|5"))
	_, _, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "date parse")

	badID := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|abc"))
	_, _, err = DecodeToken(badID)
	assert.ErrorContains(t, err, "id parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
