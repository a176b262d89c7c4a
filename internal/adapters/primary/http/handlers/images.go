package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golf-content-service/internal/adapters/primary/http/dto"
	"golf-content-service/internal/core/domain"
)

// DeriveImageURL resolves the first usable reference among reference and
// fallbacks and returns every URL derived for it.
func (h *Handler) DeriveImageURL(c *gin.Context) {
	var req dto.ImageURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref := domain.ResolveImage(req.Reference, req.Fallbacks...)
	if !ref.HasAsset() {
		mapDomainError(c, domain.ErrInvalidReference)
		return
	}

	baseWidth := req.BaseWidth
	if baseWidth == 0 {
		baseWidth = h.baseWidth
	}

	url := h.imageSvc.ImageURL(ref, dto.ToImageURLOptions(req.Options))
	if url == "" {
		mapDomainError(c, domain.ErrMalformedAssetRef)
		return
	}

	c.JSON(http.StatusOK, dto.ImageURLResponse{
		URL:        url,
		Responsive: h.imageSvc.ResponsiveImageURLs(ref),
		Social:     h.imageSvc.SocialImageURL(ref),
		Display:    h.imageSvc.ImageWithDisplayOptions(ref, baseWidth),
		Caption:    ref.EffectiveCaption(),
		Alt:        ref.EffectiveAlt(),
		Credit:     ref.PhotoCredit(),
	})
}
