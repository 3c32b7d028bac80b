package utf16any

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		chars string
		want  []Match
	}{
		{"single char", "abcXdXeXf", "X", []Match{{Pos: 3}, {Pos: 5}, {Pos: 7}}},
		{"case distinct", "aAbB", "aA", []Match{{Pos: 0, Index: 0}, {Pos: 1, Index: 1}}},
		{"no match", "hello", "xyz", nil},
		{"empty query", "hello", "", nil},
		{"duplicates", "a-a", "aa", []Match{{0, 0}, {0, 1}, {2, 0}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := EncodeString(tt.text)
			results := make([]Match, 2*len(text))
			found, n, err := FindAll(text, EncodeString(tt.chars), results)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want) > 0, found)
			require.Equal(t, len(tt.want), n)
			if n > 0 {
				assert.Equal(t, tt.want, results[:n])
			}
		})
	}
}

func TestFindAll_EmptyText(t *testing.T) {
	for _, text := range [][]uint16{nil, {}} {
		found, n, err := FindAll(text, EncodeString("abc"), nil)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, n)

		pos, err := FindFirst(text, EncodeString("abc"))
		require.NoError(t, err)
		assert.Equal(t, -1, pos)
	}
}

func TestFindAll_QuerySetSize(t *testing.T) {
	text := EncodeString(strings.Repeat("x", 40))
	results := make([]Match, len(text))

	chars := make([]uint16, MaxChars)
	for i := range chars {
		chars[i] = uint16('A' + i)
	}
	chars[MaxChars-1] = 'x'
	found, n, err := FindAll(text, chars, results)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, len(text), n)
	assert.Equal(t, Match{Pos: 0, Index: MaxChars - 1}, results[0])

	_, _, err = FindAll(text, append(chars, 'y'), results)
	assert.ErrorIs(t, err, ErrTooManyChars)

	_, err = FindFirst(text, append(chars, 'y'))
	assert.ErrorIs(t, err, ErrTooManyChars)
}

func TestFindAllRange(t *testing.T) {
	text := EncodeString("XaXbXcXdXeXfXgXhXiXj")
	chars := EncodeString("X")
	results := make([]Match, len(text))

	found, n, err := FindAllRange(text, chars, results, 3, 6)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []Match{{Pos: 4}, {Pos: 6}, {Pos: 8}}, results[:n])

	found, n, err = FindAllRange(text, chars, results, 3, 0)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, n)

	_, _, err = FindAllRange(text, chars, results, len(text), 0)
	assert.ErrorIs(t, err, ErrStartOutOfRange)

	_, _, err = FindAllRange(text, chars, results, 19, 2)
	assert.ErrorIs(t, err, ErrCountOutOfRange)
}

func TestFindAllFrom(t *testing.T) {
	text := EncodeString("a,b,c,d")
	results := make([]Match, len(text))

	_, n, err := FindAllFrom(text, EncodeString(","), results, 2)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Pos: 3}, {Pos: 5}}, results[:n])

	_, _, err = FindAllFrom(text, EncodeString(","), results, len(text))
	assert.ErrorIs(t, err, ErrStartOutOfRange)
}

func TestFindFirst(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		chars string
		start int
		want  int
	}{
		{"first of three", "abcXdXeXf", "X", 0, 3},
		{"from start", "abcXdXeXf", "X", 4, 5},
		{"last unit", "abcXdXeXf", "f", 8, 8},
		{"any of several", "hello, world", " ,", 0, 5},
		{"absent", "hello", "z", 0, -1},
		{"empty query", "hello", "", 0, -1},
		{"long input", strings.Repeat(".", 200) + "!", "!?", 3, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindFirstFrom(EncodeString(tt.text), EncodeString(tt.chars), tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindFirstRange(t *testing.T) {
	text := EncodeString("....X....Y")

	pos, err := FindFirstRange(text, EncodeString("XY"), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	pos, err = FindFirstRange(text, EncodeString("XY"), 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 9, pos)

	_, err = FindFirstRange(text, EncodeString("XY"), -1, 1)
	assert.ErrorIs(t, err, ErrStartOutOfRange)

	_, err = FindFirstRange(text, EncodeString("XY"), 5, 6)
	assert.ErrorIs(t, err, ErrCountOutOfRange)

	_, err = FindFirstRange(text, nil, 0, 1)
	assert.ErrorIs(t, err, ErrNilChars)
}

func TestFindChar(t *testing.T) {
	text := EncodeString("a\tb\tc")
	assert.Equal(t, []int{1, 3}, FindAllChar(text, '\t'))
	assert.Nil(t, FindAllChar(text, '\n'))
	assert.Equal(t, 1, FindFirstChar(text, '\t'))
	assert.Equal(t, -1, FindFirstChar(nil, '\t'))
}

func TestFindString(t *testing.T) {
	matches, err := FindAllString("naïve café", "é ")
	require.NoError(t, err)
	assert.Equal(t, []Match{{Pos: 5, Index: 1}, {Pos: 9, Index: 0}}, matches)

	// The emoji encodes as a surrogate pair, one record per half.
	matches, err = FindAllString("a😀b", "😀")
	require.NoError(t, err)
	assert.Equal(t, []Match{{Pos: 1, Index: 0}, {Pos: 2, Index: 1}}, matches)

	pos, err := FindFirstString("key=value", "=:")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	_, err = FindAllString("x", strings.Repeat("y", MaxChars+1))
	assert.ErrorIs(t, err, ErrTooManyChars)
}
