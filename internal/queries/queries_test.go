package queries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplatesAreNamedAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range All {
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.GROQ)
		assert.False(t, seen[tmpl.Name], "duplicate template %s", tmpl.Name)
		seen[tmpl.Name] = true
	}
}

func TestSlugTemplatesTakeSlugParam(t *testing.T) {
	for _, tmpl := range []Template{Article, Club, BuyingGuide, Brand, ExternalVideo} {
		assert.True(t, strings.Contains(tmpl.GROQ, "$slug"), tmpl.Name)
	}
	for _, tmpl := range []Template{Articles, FeaturedArticles, FeaturedClubs} {
		assert.True(t, strings.Contains(tmpl.GROQ, "$limit"), tmpl.Name)
	}
}

func TestBind(t *testing.T) {
	q := Article.Bind(map[string]any{"slug": "fix-your-slice"})

	assert.Equal(t, "article", q.Name)
	assert.Equal(t, Article.GROQ, q.GROQ)
	assert.Equal(t, "fix-your-slice", q.Params["slug"])
}
