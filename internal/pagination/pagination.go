// Package pagination implements the stateless cursor protocol shared
// by every collection endpoint. The continuation token is nothing but
// a reversible encoding of the next start index, so the server keeps
// no paging state between calls.
package pagination

import (
	"encoding/base64"
	"strconv"

	"github.com/yourname/wearmock/internal"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

// ClampLimit applies the default for unset (zero or negative is
// treated as unset only when exactly 0; see callers) and bounds the
// requested page size to [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor encodes a start index into an opaque token.
func EncodeCursor(index int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(index)))
}

// DecodeCursor reverses EncodeCursor. A corrupt token fails loudly;
// silently defaulting to index 0 would break paging continuity.
func DecodeCursor(token string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, internal.ValidationError("pagination: malformed continuation token")
	}
	idx, err := strconv.Atoi(string(raw))
	if err != nil || idx < 0 {
		return 0, internal.ValidationError("pagination: invalid continuation token")
	}
	return idx, nil
}

// Page slices one page out of data. An empty token starts at index 0.
// The returned token is empty once the sequence is exhausted.
func Page[T any](data []T, limit int, token string) ([]T, string, error) {
	limit = ClampLimit(limit)

	start := 0
	if token != "" {
		idx, err := DecodeCursor(token)
		if err != nil {
			return nil, "", err
		}
		start = idx
	}
	if start >= len(data) {
		return []T{}, "", nil
	}

	end := start + limit
	if end >= len(data) {
		return data[start:], "", nil
	}
	return data[start:end], EncodeCursor(end), nil
}
