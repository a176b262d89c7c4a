package sanity

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golf-content-service/internal/config"
	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
)

var (
	// image-<id>-<width>x<height>-<format>
	imageRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)
	// file-<id>-<extension>
	fileRefPattern = regexp.MustCompile(`^file-([A-Za-z0-9]+)-(\w+)$`)
)

// URLBuilder formats image and file CDN URLs. It performs no I/O.
type URLBuilder struct {
	cdnHost   string
	projectID string
	dataset   string
}

// NewURLBuilder creates the CDN URL builder for images and files.
func NewURLBuilder(cfg *config.SanityConfig) *URLBuilder {
	host := cfg.CDNHost
	if host == "" {
		host = "cdn.sanity.io"
	}
	return &URLBuilder{cdnHost: host, projectID: cfg.ProjectID, dataset: cfg.Dataset}
}

var (
	_ ports.ImageURLBuilder = (*URLBuilder)(nil)
	_ ports.FileURLBuilder  = (*URLBuilder)(nil)
)

// ImageURL builds https://<cdn>/images/<project>/<dataset>/<id>-<WxH>.<fmt>?<directives>.
// A locator with only a URL keeps that URL and gets the directives appended.
func (b *URLBuilder) ImageURL(src *domain.AssetLocator, t domain.ImageTransform) (string, error) {
	if src.IsZero() {
		return "", domain.ErrMalformedAssetRef
	}

	var base string
	if id := src.Identifier(); id != "" {
		m := imageRefPattern.FindStringSubmatch(id)
		if m == nil {
			return "", fmt.Errorf("%w: %q", domain.ErrMalformedAssetRef, id)
		}
		base = fmt.Sprintf("https://%s/images/%s/%s/%s-%s.%s", b.cdnHost, b.projectID, b.dataset, m[1], m[2], m[3])
	} else {
		u, err := url.Parse(src.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "", fmt.Errorf("%w: %q", domain.ErrMalformedAssetRef, src.URL)
		}
		u.RawQuery = ""
		base = u.String()
	}

	if q := transformQuery(t); q != "" {
		return base + "?" + q, nil
	}
	return base, nil
}

// transformQuery emits directives in a fixed order so equal transforms give equal URLs.
func transformQuery(t domain.ImageTransform) string {
	var parts []string
	add := func(k, v string) {
		parts = append(parts, k+"="+url.QueryEscape(v))
	}
	if t.Width > 0 {
		add("w", strconv.Itoa(t.Width))
	}
	if t.Height > 0 {
		add("h", strconv.Itoa(t.Height))
	}
	if t.Format != "" {
		add("fm", string(t.Format))
	}
	if t.Quality > 0 {
		add("q", strconv.Itoa(t.Quality))
	}
	if t.Fit != "" {
		add("fit", string(t.Fit))
	}
	if t.Crop != "" {
		add("crop", string(t.Crop))
	}
	if t.Auto != "" {
		add("auto", string(t.Auto))
	}
	return strings.Join(parts, "&")
}

// FileURL builds https://<cdn>/files/<project>/<dataset>/<id>.<ext>.
func (b *URLBuilder) FileURL(ref string) (string, error) {
	m := fileRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrMalformedAssetRef, ref)
	}
	return fmt.Sprintf("https://%s/files/%s/%s/%s.%s", b.cdnHost, b.projectID, b.dataset, m[1], m[2]), nil
}
