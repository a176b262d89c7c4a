package services

import (
	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
)

// DefaultBaseWidth is the layout width display options are scaled against.
const DefaultBaseWidth = 800

// Responsive breakpoints.
const (
	WidthMobile  = 400
	WidthTablet  = 768
	WidthDesktop = 1200
	WidthLarge   = 1600
)

// Open Graph card.
const (
	SocialWidth   = 1200
	SocialHeight  = 630
	SocialQuality = 85
)

const displayQuality = 85

// ImageURLOptions are caller overrides; zero values fall back to the defaults.
type ImageURLOptions struct {
	Width   int
	Height  int
	Format  domain.Format
	Quality int
	Fit     domain.FitMode
	Crop    domain.CropAnchor
	Auto    domain.AutoMode
}

type ResponsiveImageURLs struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
	Large   string `json:"large"`
}

// ImageService derives CDN URLs for image references. It never performs I/O:
// the builder only formats strings.
type ImageService struct {
	builder ports.ImageURLBuilder
}

// NewImageService creates a new image URL service
func NewImageService(builder ports.ImageURLBuilder) *ImageService {
	return &ImageService{builder: builder}
}

// Transform applies defaults to opts and keeps only the directives that differ
// from them. Width/height are kept when positive; auto is always kept.
func Transform(opts ImageURLOptions) domain.ImageTransform {
	format := opts.Format
	if format == "" {
		format = domain.DefaultFormat
	}
	quality := opts.Quality
	if quality <= 0 {
		quality = domain.DefaultQuality
	}
	fit := opts.Fit
	if fit == "" {
		fit = domain.DefaultFit
	}
	crop := opts.Crop
	if crop == "" {
		crop = domain.DefaultCrop
	}
	auto := opts.Auto
	if auto == "" {
		auto = domain.DefaultAuto
	}

	t := domain.ImageTransform{Auto: auto}
	if opts.Width > 0 {
		t.Width = opts.Width
	}
	if opts.Height > 0 {
		t.Height = opts.Height
	}
	if format != domain.DefaultFormat {
		t.Format = format
	}
	if quality != domain.DefaultQuality {
		t.Quality = quality
	}
	if fit != domain.DefaultFit {
		t.Fit = fit
	}
	if crop != domain.DefaultCrop {
		t.Crop = crop
	}
	return t
}

// ImageURL returns "" when the reference has no asset or the builder rejects
// the locator.
func (s *ImageService) ImageURL(ref *domain.ImageReference, opts ImageURLOptions) string {
	if !ref.HasAsset() || s.builder == nil {
		return ""
	}
	url, err := s.builder.ImageURL(ref.Asset.Source(), Transform(opts))
	if err != nil {
		return ""
	}
	return url
}

func (s *ImageService) ResponsiveImageURLs(ref *domain.ImageReference) *ResponsiveImageURLs {
	if !ref.HasAsset() {
		return nil
	}
	at := func(w int) string {
		return s.ImageURL(ref, ImageURLOptions{Width: w, Format: domain.FormatWebP})
	}
	return &ResponsiveImageURLs{
		Mobile:  at(WidthMobile),
		Tablet:  at(WidthTablet),
		Desktop: at(WidthDesktop),
		Large:   at(WidthLarge),
	}
}

// SocialImageURL ignores the reference's display options.
func (s *ImageService) SocialImageURL(ref *domain.ImageReference) string {
	return s.ImageURL(ref, ImageURLOptions{
		Width:   SocialWidth,
		Height:  SocialHeight,
		Fit:     domain.FitCrop,
		Crop:    domain.CropCenter,
		Format:  domain.FormatJPG,
		Quality: SocialQuality,
	})
}

// DisplayOptionsTransform maps editorial display options onto pixel options for
// the given base width.
func DisplayOptionsTransform(opts domain.DisplayOptions, baseWidth int) ImageURLOptions {
	if baseWidth <= 0 {
		baseWidth = DefaultBaseWidth
	}
	opts = opts.Normalize()

	width := domain.ScaleWidth(baseWidth, opts.Size)
	height := opts.Crop.Height(width)

	fit := domain.FitMax
	if height > 0 {
		fit = domain.FitCrop
	}
	return ImageURLOptions{
		Width:   width,
		Height:  height,
		Fit:     fit,
		Format:  domain.FormatWebP,
		Quality: displayQuality,
	}
}

func (s *ImageService) ImageWithDisplayOptions(ref *domain.ImageReference, baseWidth int) string {
	if !ref.HasAsset() {
		return ""
	}
	return s.ImageURL(ref, DisplayOptionsTransform(ref.Options(), baseWidth))
}
