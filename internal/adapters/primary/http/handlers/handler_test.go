package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
	"golf-content-service/internal/core/services"
	"golf-content-service/internal/testutil"
)

// cdnBuilder renders a predictable URL from the locator id and transform.
type cdnBuilder struct{}

func (cdnBuilder) ImageURL(src *domain.AssetLocator, t domain.ImageTransform) (string, error) {
	if src.Identifier() == "bad" {
		return "", domain.ErrMalformedAssetRef
	}
	return fmt.Sprintf("https://cdn/%s?w=%d&h=%d", src.Identifier(), t.Width, t.Height), nil
}

func setupRouter() (*testutil.MockContentStore, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	store := new(testutil.MockContentStore)

	images := services.NewImageService(cdnBuilder{})
	videos := services.NewVideoService("acct", nil, images)
	content := services.NewContentService(store, nil, nil, images, videos, services.ContentOptions{})

	h := New(content, images, 800)
	r := gin.New()
	api := r.Group("/api/v1/content")
	h.RegisterRoutes(api)
	r.GET("/healthz", h.Health)

	return store, r
}

func queryNamed(name string) interface{} {
	return mock.MatchedBy(func(q ports.Query) bool { return q.Name == name })
}

func serve(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Article Tests
// ============================================================================

func TestListArticles(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, mock.MatchedBy(func(q ports.Query) bool {
		return q.Name == "articles" && q.Params["limit"] == 5
	})).Return(json.RawMessage(`[{"_id": "a1", "title": "One"}, {"_id": "a2", "title": "Two"}]`), nil)

	w := serve(r, "GET", "/api/v1/content/articles?limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
}

func TestListArticles_InvalidLimit(t *testing.T) {
	_, r := setupRouter()

	for _, limit := range []string{"abc", "-1"} {
		w := serve(r, "GET", "/api/v1/content/articles?limit="+limit, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
	}
}

func TestListFeaturedArticles_RoutesBeforeSlug(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("featured_articles")).Return(json.RawMessage(`[]`), nil)

	w := serve(r, "GET", "/api/v1/content/articles/featured", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items": [], "total": 0}`, w.Body.String())
}

func TestGetArticle(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("article")).Return(json.RawMessage(`{
		"_id": "a1", "title": "One", "slug": {"current": "one"},
		"author": {"name": "Jane Smith"}
	}`), nil)

	w := serve(r, "GET", "/api/v1/content/articles/one", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "By Jane Smith", resp["byline"])
}

func TestGetArticle_NotFound(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("article")).Return(json.RawMessage(`null`), nil)

	w := serve(r, "GET", "/api/v1/content/articles/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle_StoreUnavailable(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("article")).Return(nil, domain.ErrContentStoreUnavailable)

	w := serve(r, "GET", "/api/v1/content/articles/one", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetArticle_QueryFailed(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("article")).Return(nil, domain.ErrQueryFailed)

	w := serve(r, "GET", "/api/v1/content/articles/one", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// ============================================================================
// Equipment / Video Tests
// ============================================================================

func TestGetClub(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("club")).Return(json.RawMessage(`{
		"_id": "c1", "name": "Qi10", "brand": {"name": "TaylorMade"},
		"specifications": {"availableLofts": [9, 10.5]}
	}`), nil)

	w := serve(r, "GET", "/api/v1/content/clubs/qi10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "TaylorMade Qi10", resp["full_name"])
	assert.Equal(t, "9°, 10.5°", resp["lofts"])
}

func TestListHotListGold(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("hot_list_gold")).Return(json.RawMessage(`[{"_id": "c1"}]`), nil)

	w := serve(r, "GET", "/api/v1/content/clubs/hot-list", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetVideoEmbed_UnsupportedPlatform(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("external_video")).Return(json.RawMessage(`{
		"_id": "v1", "slug": {"current": "v"}, "platform": "dailymotion", "videoId": "x"
	}`), nil)

	w := serve(r, "GET", "/api/v1/content/videos/v/embed", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVideoEmbed(t *testing.T) {
	store, r := setupRouter()
	store.On("Query", mock.Anything, queryNamed("external_video")).Return(json.RawMessage(`{
		"_id": "v1", "slug": {"current": "v"}, "platform": "youtube", "videoId": "abc"
	}`), nil)

	w := serve(r, "GET", "/api/v1/content/videos/v/embed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Embed struct {
			EmbedURL string `json:"embed_url"`
		} `json:"embed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://www.youtube.com/embed/abc", resp.Embed.EmbedURL)
}

// ============================================================================
// Image URL Tests
// ============================================================================

func TestDeriveImageURL(t *testing.T) {
	_, r := setupRouter()
	body := []byte(`{
		"reference": {
			"customCaption": "On the 18th",
			"displayOptions": {"size": "small", "crop": "square"},
			"asset": {"_id": "dam-1", "credit": "Getty", "defaultAlt": "Alt",
				"image": {"asset": {"_id": "image-abc-100x100-jpg"}}}
		},
		"options": {"width": 320}
	}`)

	w := serve(r, "POST", "/api/v1/content/images/url", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://cdn/image-abc-100x100-jpg?w=320&h=0", resp["url"])
	assert.Equal(t, "https://cdn/image-abc-100x100-jpg?w=400&h=400", resp["display"])
	assert.Equal(t, "https://cdn/image-abc-100x100-jpg?w=1200&h=630", resp["social"])
	assert.Equal(t, "On the 18th", resp["caption"])
	assert.Equal(t, "Alt", resp["alt"])
	assert.Equal(t, "Getty", resp["credit"])
}

func TestDeriveImageURL_UsesFallback(t *testing.T) {
	_, r := setupRouter()
	body := []byte(`{
		"reference": {"customCaption": "orphan"},
		"fallbacks": [null, {"asset": {"_id": "dam-2", "image": {"asset": {"_id": "image-lead-10x10-png"}}}}]
	}`)

	w := serve(r, "POST", "/api/v1/content/images/url", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://cdn/image-lead-10x10-png?w=0&h=0", resp["url"])
	assert.Nil(t, resp["caption"])
}

func TestDeriveImageURL_NullReferenceWithFallbacks(t *testing.T) {
	_, r := setupRouter()
	body := []byte(`{
		"reference": null,
		"fallbacks": [{"asset": {"_id": "dam-3", "defaultAlt": "Tout", "image": {"asset": {"_id": "image-tout-10x10-jpg"}}}}]
	}`)

	w := serve(r, "POST", "/api/v1/content/images/url", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "https://cdn/image-tout-10x10-jpg?w=0&h=0", resp["url"])
	assert.Equal(t, "Tout", resp["alt"])
}

func TestDeriveImageURL_Errors(t *testing.T) {
	_, r := setupRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing reference", body: `{}`},
		{name: "null reference without fallbacks", body: `{"reference": null, "fallbacks": [null]}`},
		{name: "no asset anywhere", body: `{"reference": {"customAlt": "x"}}`},
		{name: "malformed locator", body: `{"reference": {"asset": {"image": {"asset": {"_id": "bad"}}}}}`},
		{name: "invalid format", body: `{"reference": {"asset": {"_id": "dam"}}, "options": {"format": "gif"}}`},
		{name: "quality out of range", body: `{"reference": {"asset": {"_id": "dam"}}, "options": {"quality": 150}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, "POST", "/api/v1/content/images/url", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// ============================================================================
// Health Tests
// ============================================================================

func TestHealth(t *testing.T) {
	store, r := setupRouter()
	store.On("IsAvailable", mock.Anything).Return(true).Once()
	store.On("IsAvailable", mock.Anything).Return(false).Once()

	assert.Equal(t, http.StatusOK, serve(r, "GET", "/healthz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "GET", "/healthz", nil).Code)
}
