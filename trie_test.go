package trie

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestInsertAndContains(t *testing.T) {
	t.Run("Inserted words are found in any case", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "Car", "CART", "dOg")
		for _, word := range []string{"cat", "CAT", "car", "cAr", "cart", "Cart", "dog", "DOG"} {
			assert.True(t, tr.Contains(word), word)
		}
	})

	t.Run("Prefixes and unknown words are not found", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "car", "cart", "dog")
		for _, word := range []string{"ca", "c", "do", "carts", "cow", "zebra"} {
			assert.False(t, tr.Contains(word), word)
		}
	})

	t.Run("Non-letters are skipped on insert", func(t *testing.T) {
		tr := New()
		tr.Insert("a1b")
		assert.True(t, tr.Contains("ab"))
		assert.False(t, tr.Contains("a1b"))
		assert.False(t, tr.Contains("a"))
	})

	t.Run("Non-letters fail a lookup", func(t *testing.T) {
		tr := New()
		tr.Insert("hello", "Hello!", "it's")
		assert.True(t, tr.Contains("hello"))
		assert.True(t, tr.Contains("its"))
		assert.False(t, tr.Contains("hello!"))
		assert.False(t, tr.Contains("it's"))
		assert.False(t, tr.Contains(" hello"))
		assert.Equal(t, 2, tr.Len())
	})

	t.Run("Non-Latin letters are skipped", func(t *testing.T) {
		tr := New()
		tr.Insert("café", "naïve")
		assert.True(t, tr.Contains("caf"))
		assert.True(t, tr.Contains("nave"))
		assert.False(t, tr.Contains("café"))
	})

	t.Run("Empty input marks the root", func(t *testing.T) {
		tr := New()
		assert.False(t, tr.Contains(""))
		tr.Insert("")
		assert.True(t, tr.Contains(""))
		assert.Equal(t, 1, tr.Len())

		tr = New()
		tr.Insert("123 !")
		assert.True(t, tr.Contains(""))
	})

	t.Run("Empty trie", func(t *testing.T) {
		tr := New()
		assert.False(t, tr.Contains("a"))
		assert.Equal(t, 0, tr.Len())
		assert.Empty(t, tr.SuggestionsFor("a"))
	})
}

func TestSuggestionsFor(t *testing.T) {
	tr := New()
	tr.Insert("cat", "car", "cart", "dog", "apple", "carton", "ca")

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "pre-order alphabetical", prefix: "car", want: []string{"car", "cart", "carton"}},
		{name: "prefix that is a word", prefix: "ca", want: []string{"ca", "car", "cart", "carton", "cat"}},
		{name: "upper case prefix", prefix: "CA", want: []string{"CA", "CAr", "CArt", "CArton", "CAt"}},
		{name: "mixed case prefix", prefix: "Ca", want: []string{"Ca", "Car", "Cart", "Carton", "Cat"}},
		{name: "whole word", prefix: "dog", want: []string{"dog"}},
		{name: "missing edge", prefix: "cb", want: []string{}},
		{name: "prefix longer than any word", prefix: "dogs", want: []string{}},
		{name: "non-letter in prefix", prefix: "c-a", want: []string{}},
		{name: "empty prefix lists everything", prefix: "", want: []string{"apple", "ca", "car", "cart", "carton", "cat", "dog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.SuggestionsFor(tt.prefix)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestionsForExamples(t *testing.T) {
	t.Run("Car before cart before cat", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "car", "cart", "dog")
		assert.Equal(t, []string{"car", "cart", "cat"}, tr.SuggestionsFor("ca"))
	})

	t.Run("Apple", func(t *testing.T) {
		tr := New()
		tr.Insert("apple")
		assert.Equal(t, []string{"apple"}, tr.SuggestionsFor("app"))
		assert.Equal(t, []string{}, tr.SuggestionsFor("appz"))
	})

	t.Run("Caller's prefix is kept verbatim", func(t *testing.T) {
		tr := New()
		tr.Insert("cat", "car", "cart", "dog")
		assert.Equal(t, []string{"Car", "Cart", "Cat"}, tr.SuggestionsFor("Ca"))
		assert.Equal(t, []string{"DOG"}, tr.SuggestionsFor("DOG"))
	})

	t.Run("Each call returns a fresh slice", func(t *testing.T) {
		tr := New()
		tr.Insert("apple", "apply")
		first := tr.SuggestionsFor("app")
		first[0] = "changed"
		assert.Equal(t, []string{"apple", "apply"}, tr.SuggestionsFor("app"))
	})
}

func TestInsertIsIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("cat", "car", "cart")
	before := tr.SuggestionsFor("")
	tr.Insert("cat", "CAR", "car!")
	assert.Equal(t, before, tr.SuggestionsFor(""))
	assert.Equal(t, 3, tr.Len())
	assert.True(t, tr.Contains("cat"))
}

func TestHasPrefix(t *testing.T) {
	tr := New()
	tr.Insert("cart")
	assert.True(t, tr.HasPrefix(""))
	assert.True(t, tr.HasPrefix("ca"))
	assert.True(t, tr.HasPrefix("CART"))
	assert.False(t, tr.HasPrefix("carts"))
	assert.False(t, tr.HasPrefix("c a"))
}

func TestSuggestionsIterator(t *testing.T) {
	tr := New()
	tr.Insert("cat", "car", "cart", "dog")

	t.Run("Matches SuggestionsFor", func(t *testing.T) {
		var got []string
		for word := range tr.Suggestions("c") {
			got = append(got, word)
		}
		assert.Equal(t, tr.SuggestionsFor("c"), got)
	})

	t.Run("Stops early", func(t *testing.T) {
		var got []string
		for word := range tr.Suggestions("") {
			got = append(got, word)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"car", "cart"}, got)
		// the read lock is released after an early break
		tr.Insert("cow")
		assert.True(t, tr.Contains("cow"))
	})

	t.Run("Missing prefix yields nothing", func(t *testing.T) {
		for word := range tr.Suggestions("x") {
			t.Fatalf("unexpected word %q", word)
		}
	})
}

func TestLongWord(t *testing.T) {
	tr := New()
	long := strings.Repeat("ab", 20000)
	tr.Insert(long)
	assert.True(t, tr.Contains(long))
	assert.Equal(t, []string{long}, tr.SuggestionsFor("abab"))
}

func TestConcurrentQueries(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := New()
	tr.Insert("cat", "car", "cart", "dog")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, tr.Contains("cart"))
				assert.Equal(t, []string{"car", "cart", "cat"}, tr.SuggestionsFor("ca"))
			}
		}()
	}
	wg.Wait()
}
