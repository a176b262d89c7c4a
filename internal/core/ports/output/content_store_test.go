package ports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	a := Query{Name: "articles", GROQ: "*[0...$limit]", Params: map[string]any{"limit": 10, "slug": "x"}}
	b := Query{Name: "articles", GROQ: "*[0...$limit]", Params: map[string]any{"slug": "x", "limit": 10}}
	c := Query{Name: "articles", GROQ: "*[0...$limit]", Params: map[string]any{"limit": 20, "slug": "x"}}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
	assert.True(t, strings.HasPrefix(a.CacheKey(), "articles:"))
	assert.Len(t, a.CacheKey(), len("articles:")+16)
}
