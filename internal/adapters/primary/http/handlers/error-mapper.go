package handlers

import (
	"errors"
	"net/http"

	"golf-content-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrClubNotFound),
		errors.Is(err, domain.ErrBuyingGuideNotFound),
		errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidSlug),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrMalformedAssetRef),
		errors.Is(err, domain.ErrUnsupportedVideoPlatform):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrQueryFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrContentStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
