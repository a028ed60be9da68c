package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeJournalCursor creates an opaque token for resuming the journal stream after a line.
func EncodeJournalCursor(c domain.JournalCursor) string {
	return EncodeMultiFieldToken(c.Date.Format(timeFormat), c.TransactionID, strconv.Itoa(c.LineNo))
}

// DecodeJournalCursor parses a token produced by EncodeJournalCursor.
func DecodeJournalCursor(token string) (domain.JournalCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.JournalCursor{}, err
	}
	if len(parts) != 3 {
		return domain.JournalCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.JournalCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	lineNo, err := strconv.Atoi(parts[2])
	if err != nil {
		return domain.JournalCursor{}, fmt.Errorf("invalid pagination token format (line number parse): %w", err)
	}

	return domain.JournalCursor{Date: date, TransactionID: parts[1], LineNo: lineNo}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
