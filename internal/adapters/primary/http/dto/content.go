package dto

import (
	"golf-content-service/internal/core/domain"
	"golf-content-service/internal/core/services"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ImageOptionsRequest carries explicit transform overrides. Empty fields take
// the CDN defaults.
type ImageOptionsRequest struct {
	Width   int    `json:"width" binding:"min=0"`
	Height  int    `json:"height" binding:"min=0"`
	Format  string `json:"format" binding:"omitempty,oneof=auto webp jpg png"`
	Quality int    `json:"quality" binding:"min=0,max=100"`
	Fit     string `json:"fit" binding:"omitempty,oneof=crop fill max min"`
	Crop    string `json:"crop" binding:"omitempty,oneof=top bottom left right center focalpoint"`
	Auto    string `json:"auto" binding:"omitempty,oneof=format compress"`
}

// ImageURLRequest asks for the URLs of a single image reference
type ImageURLRequest struct {
	Reference *domain.ImageReference   `json:"reference"`
	Fallbacks []*domain.ImageReference `json:"fallbacks"`
	Options   *ImageOptionsRequest     `json:"options"`
	BaseWidth int                      `json:"base_width" binding:"min=0"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ImageURLResponse holds every URL derived for a reference
type ImageURLResponse struct {
	URL        string                        `json:"url"`
	Responsive *services.ResponsiveImageURLs `json:"responsive,omitempty"`
	Social     string                        `json:"social,omitempty"`
	Display    string                        `json:"display,omitempty"`
	Caption    string                        `json:"caption,omitempty"`
	Alt        string                        `json:"alt,omitempty"`
	Credit     string                        `json:"credit,omitempty"`
}

// ListResponse wraps a list payload
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse wraps items, never emitting a null list.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// ============================================================================
// Mappers
// ============================================================================

// ToImageURLOptions converts request overrides; nil means all defaults.
func ToImageURLOptions(req *ImageOptionsRequest) services.ImageURLOptions {
	if req == nil {
		return services.ImageURLOptions{}
	}
	opts := services.ImageURLOptions{
		Width:   req.Width,
		Height:  req.Height,
		Quality: req.Quality,
	}
	if req.Format != "" {
		opts.Format = domain.ParseFormat(req.Format)
	}
	if req.Fit != "" {
		opts.Fit = domain.ParseFitMode(req.Fit)
	}
	if req.Crop != "" {
		opts.Crop = domain.ParseCropAnchor(req.Crop)
	}
	if req.Auto != "" {
		opts.Auto = domain.ParseAutoMode(req.Auto)
	}
	return opts
}
