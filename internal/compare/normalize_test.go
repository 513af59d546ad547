package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	lines := []string{"  Apple ", "BANANA", "cherry\t"}

	t.Run("Should return input unchanged when no option is set", func(t *testing.T) {
		assert.Equal(t, lines, Normalize(lines, &Options{}))
		assert.Equal(t, lines, Normalize(lines, nil))
	})

	t.Run("Should ignore the contains option", func(t *testing.T) {
		assert.Equal(t, lines, Normalize(lines, &Options{Contains: true}))
	})

	t.Run("Should trim lines", func(t *testing.T) {
		assert.Equal(t, []string{"Apple", "BANANA", "cherry"}, Normalize(lines, &Options{Trim: true}))
	})

	t.Run("Should strip a byte order mark when trimming", func(t *testing.T) {
		got := Normalize([]string{"\uFEFFapple", "banana\uFEFF "}, &Options{Trim: true})
		assert.Equal(t, []string{"apple", "banana"}, got)
	})

	t.Run("Should lowercase lines", func(t *testing.T) {
		assert.Equal(t, []string{"  apple ", "banana", "cherry\t"}, Normalize(lines, &Options{IgnoreCase: true}))
	})

	t.Run("Should trim then lowercase", func(t *testing.T) {
		got := Normalize(lines, &Options{Trim: true, IgnoreCase: true})
		assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
	})

	t.Run("Should not modify the input slice", func(t *testing.T) {
		in := []string{" A "}
		Normalize(in, &Options{Trim: true, IgnoreCase: true})
		assert.Equal(t, []string{" A "}, in)
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		for _, opts := range []*Options{
			nil,
			{Trim: true},
			{IgnoreCase: true},
			{Trim: true, IgnoreCase: true},
			{Trim: true, IgnoreCase: true, Contains: true},
		} {
			once := Normalize(lines, opts)
			assert.Equal(t, once, Normalize(once, opts), "options %+v", opts)
		}
	})
}
