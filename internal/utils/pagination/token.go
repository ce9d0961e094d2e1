package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeHistoryCursor creates an opaque cursor from a timestamp and a row ID.
// Statement pages are keyed on the oldest entry already returned; carrying the
// ID alongside the timestamp keeps rows with colliding timestamps reachable on
// the next page.
func EncodeHistoryCursor(ts time.Time, id string) string {
	payload := ts.Format(timeFormat) + "|" + id
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// DecodeHistoryCursor parses an opaque cursor back into its timestamp and ID.
func DecodeHistoryCursor(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tsPart, id, found := strings.Cut(string(decodedBytes), "|")
	if !found || id == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (missing id part)")
	}

	ts, err := time.Parse(timeFormat, tsPart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return ts, id, nil
}
