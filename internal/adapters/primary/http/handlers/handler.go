package handlers

import (
	"golf-content-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	contentSvc *services.ContentService
	imageSvc   *services.ImageService
	baseWidth  int
}

func New(contentSvc *services.ContentService, imageSvc *services.ImageService, baseWidth int) *Handler {
	if baseWidth <= 0 {
		baseWidth = services.DefaultBaseWidth
	}
	return &Handler{
		contentSvc: contentSvc,
		imageSvc:   imageSvc,
		baseWidth:  baseWidth,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Articles
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/featured", h.ListFeaturedArticles)
	r.GET("/articles/:slug", h.GetArticle)

	// Equipment
	r.GET("/clubs/featured", h.ListFeaturedClubs)
	r.GET("/clubs/hot-list", h.ListHotListGold)
	r.GET("/clubs/:slug", h.GetClub)
	r.GET("/buying-guides/:slug", h.GetBuyingGuide)
	r.GET("/brands/:slug", h.GetBrand)

	// Video
	r.GET("/videos/:slug/embed", h.GetVideoEmbed)

	// Images
	r.POST("/images/url", h.DeriveImageURL)
}
