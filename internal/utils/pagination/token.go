package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeEntryToken creates an opaque cursor from the (entry date, entry
// number, entry id) triple that orders the journal. The entry id breaks
// ties between drafts, which share entry number 0 until they are
// posted. Repositories use the cursor for keyset pagination so pages
// stay stable while new entries are posted.
func EncodeEntryToken(entryDate time.Time, entryNumber int64, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%d|%s", entryDate.Format(timeFormat), entryNumber, entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryToken parses a cursor produced by EncodeEntryToken.
func DecodeEntryToken(token string) (time.Time, int64, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return time.Time{}, 0, "", fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	entryNumber, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("invalid pagination token format (entry number parse): %w", err)
	}

	return entryDate, entryNumber, parts[2], nil
}

// EncodeCodeToken creates a cursor for code-ordered listings (accounts,
// cost centers).
func EncodeCodeToken(code string) string {
	return base64.StdEncoding.EncodeToString([]byte(code))
}

// DecodeCodeToken decodes a cursor produced by EncodeCodeToken.
func DecodeCodeToken(token string) (string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return string(decodedBytes), nil
}
