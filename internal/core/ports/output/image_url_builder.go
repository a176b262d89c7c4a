package ports

import (
	"golf-content-service/internal/core/domain"
)

// ImageURLBuilder turns an asset locator plus transform directives into a fully
// qualified CDN URL. Implementations are synchronous and perform no I/O.
type ImageURLBuilder interface {
	ImageURL(src *domain.AssetLocator, t domain.ImageTransform) (string, error)
}

// FileURLBuilder resolves a stored file reference (e.g. a native video) to its CDN URL.
type FileURLBuilder interface {
	FileURL(ref string) (string, error)
}
