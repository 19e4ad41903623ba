package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 25, 99, 100, 12345} {
		token := EncodeCursor(idx)
		got, err := DecodeCursor(token)
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
}

func TestDecodeCorruptCursor(t *testing.T) {
	for _, token := range []string{"not-base64!!", "aGVsbG8", "LTU", ""} {
		_, err := DecodeCursor(token)
		assert.Error(t, err, "token %q should fail", token)
	}
}

func TestPageTotality(t *testing.T) {
	data := make([]int, 137)
	for i := range data {
		data[i] = i
	}

	for _, limit := range []int{1, 5, 25, 100} {
		var rebuilt []int
		token := ""
		for {
			page, next, err := Page(data, limit, token)
			require.NoError(t, err)
			rebuilt = append(rebuilt, page...)
			if next == "" {
				break
			}
			token = next
		}
		assert.Equal(t, data, rebuilt, "limit %d must reconstruct the sequence", limit)
	}
}

func TestPageDefaultsAndClamping(t *testing.T) {
	data := make([]string, 300)
	for i := range data {
		data[i] = fmt.Sprintf("rec-%d", i)
	}

	// No limit given defaults to 25.
	page, next, err := Page(data, 0, "")
	require.NoError(t, err)
	assert.Len(t, page, DefaultLimit)
	assert.NotEmpty(t, next)

	// Anything above 100 is clamped to 100.
	page, _, err = Page(data, 500, "")
	require.NoError(t, err)
	assert.Len(t, page, MaxLimit)

	// Below 1 clamps to 1.
	page, _, err = Page(data, -3, "")
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestPageScenario_TwelveRecordsPageFive(t *testing.T) {
	data := make([]int, 12)
	for i := range data {
		data[i] = i
	}

	page1, token1, err := Page(data, 5, "")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, page1)
	require.NotEmpty(t, token1)

	page2, token2, err := Page(data, 5, token1)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, page2)
	require.NotEmpty(t, token2)

	page3, token3, err := Page(data, 5, token2)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, page3)
	assert.Empty(t, token3)
}

func TestPageShortData(t *testing.T) {
	data := []int{1, 2, 3}

	page, next, err := Page(data, 0, "")
	require.NoError(t, err)
	assert.Equal(t, data, page)
	assert.Empty(t, next)

	// Cursor past the end yields an empty final page, not an error.
	page, next, err = Page(data, 5, EncodeCursor(10))
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Empty(t, next)
}
