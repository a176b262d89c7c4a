package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"golf-content-service/internal/adapters/primary/http/dto"
	"golf-content-service/internal/core/domain"
)

// parseLimit reads ?limit=; absent means the service default.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.ErrInvalidLimit
	}
	return limit, nil
}

// ============================================================================
// Articles
// ============================================================================

func (h *Handler) ListArticles(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	articles, err := h.contentSvc.ListArticles(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list articles failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(articles))
}

func (h *Handler) ListFeaturedArticles(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	articles, err := h.contentSvc.ListFeaturedArticles(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list featured articles failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(articles))
}

func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.contentSvc.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// ============================================================================
// Equipment
// ============================================================================

func (h *Handler) ListFeaturedClubs(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	clubs, err := h.contentSvc.ListFeaturedClubs(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list featured clubs failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(clubs))
}

func (h *Handler) ListHotListGold(c *gin.Context) {
	clubs, err := h.contentSvc.ListHotListGold(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list hot list clubs failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(clubs))
}

func (h *Handler) GetClub(c *gin.Context) {
	club, err := h.contentSvc.GetClub(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

func (h *Handler) GetBuyingGuide(c *gin.Context) {
	guide, err := h.contentSvc.GetBuyingGuide(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (h *Handler) GetBrand(c *gin.Context) {
	brand, err := h.contentSvc.GetBrand(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

// ============================================================================
// Video
// ============================================================================

func (h *Handler) GetVideoEmbed(c *gin.Context) {
	video, err := h.contentSvc.GetVideoEmbed(c.Request.Context(), c.Param("slug"), c.Query("player_id"))
	if err != nil {
		log.WithError(err).WithField("slug", c.Param("slug")).Warn("video embed failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}
