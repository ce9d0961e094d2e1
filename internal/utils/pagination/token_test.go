package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeHistoryCursor(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 45, 123456789, time.UTC)
	id := "1d6b0f9e-4a4e-44e5-9a46-64c0d76e5a11"

	token := EncodeHistoryCursor(ts, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTS, decodedID, err := DecodeHistoryCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, ts.Equal(decodedTS), "Timestamp should survive the round trip")
	assert.Equal(t, id, decodedID, "ID should survive the round trip")

	now := time.Now().UTC()
	decodedNow, _, err := DecodeHistoryCursor(EncodeHistoryCursor(now, id))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow))
}

func TestDecodeHistoryCursorError(t *testing.T) {
	_, _, err := DecodeHistoryCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 of "notadate|some-id"
	_, _, err = DecodeHistoryCursor("bm90YWRhdGV8c29tZS1pZA==")
	assert.Error(t, err, "Should return an error for invalid date payload")
	assert.Contains(t, err.Error(), "date parse")

	// Base64 of a bare timestamp with no ID part
	_, _, err = DecodeHistoryCursor("MjAyNC0wMy0wNVQxNDozMDo0NVo=")
	assert.Error(t, err, "Should return an error when the id part is missing")
	assert.Contains(t, err.Error(), "missing id")
}
