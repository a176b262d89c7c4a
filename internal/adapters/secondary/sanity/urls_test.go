package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-content-service/internal/config"
	"golf-content-service/internal/core/domain"
)

func testBuilder() *URLBuilder {
	return NewURLBuilder(&config.SanityConfig{ProjectID: "proj1", Dataset: "production"})
}

func TestImageURL_FromAssetID(t *testing.T) {
	url, err := testBuilder().ImageURL(
		&domain.AssetLocator{ID: "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"},
		domain.ImageTransform{Width: 400, Height: 400, Format: domain.FormatWebP, Quality: 85, Fit: domain.FitCrop, Auto: domain.AutoFormat},
	)

	require.NoError(t, err)
	assert.Equal(t,
		"https://cdn.sanity.io/images/proj1/production/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg?w=400&h=400&fm=webp&q=85&fit=crop&auto=format",
		url)
}

func TestImageURL_FromBareRef(t *testing.T) {
	url, err := testBuilder().ImageURL(&domain.AssetLocator{Ref: "image-abc-10x20-png"}, domain.ImageTransform{})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/proj1/production/abc-10x20.png", url)
}

func TestImageURL_URLOnlyLocator(t *testing.T) {
	url, err := testBuilder().ImageURL(
		&domain.AssetLocator{URL: "https://cdn.sanity.io/images/proj1/production/abc-10x20.png?old=1"},
		domain.ImageTransform{Width: 1200, Crop: domain.CropFocalPoint, Auto: domain.AutoFormat},
	)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/images/proj1/production/abc-10x20.png?w=1200&crop=focalpoint&auto=format", url)
}

func TestImageURL_Malformed(t *testing.T) {
	tests := []struct {
		name string
		loc  *domain.AssetLocator
	}{
		{name: "nil", loc: nil},
		{name: "empty", loc: &domain.AssetLocator{}},
		{name: "not an image id", loc: &domain.AssetLocator{ID: "dam-record-1"}},
		{name: "file ref", loc: &domain.AssetLocator{Ref: "file-abc-mp4"}},
		{name: "relative url", loc: &domain.AssetLocator{URL: "/images/abc.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testBuilder().ImageURL(tt.loc, domain.ImageTransform{})
			assert.ErrorIs(t, err, domain.ErrMalformedAssetRef)
		})
	}
}

func TestImageURL_CustomCDNHost(t *testing.T) {
	b := NewURLBuilder(&config.SanityConfig{ProjectID: "p", Dataset: "staging", CDNHost: "images.example.com"})

	url, err := b.ImageURL(&domain.AssetLocator{ID: "image-x-1x1-gif"}, domain.ImageTransform{})

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/images/p/staging/x-1x1.gif", url)
}

func TestFileURL(t *testing.T) {
	url, err := testBuilder().FileURL("file-5f8a9c-mp4")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sanity.io/files/proj1/production/5f8a9c.mp4", url)

	_, err = testBuilder().FileURL("image-abc-10x10-jpg")
	assert.ErrorIs(t, err, domain.ErrMalformedAssetRef)
}
