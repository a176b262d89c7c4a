package domain

type Format string

const (
	FormatAuto Format = "auto"
	FormatWebP Format = "webp"
	FormatJPG  Format = "jpg"
	FormatPNG  Format = "png"
)

func ParseFormat(s string) Format {
	switch v := Format(s); v {
	case FormatWebP, FormatJPG, FormatPNG:
		return v
	default:
		return FormatAuto
	}
}

type FitMode string

const (
	FitCrop FitMode = "crop"
	FitFill FitMode = "fill"
	FitMax  FitMode = "max"
	FitMin  FitMode = "min"
)

func ParseFitMode(s string) FitMode {
	switch v := FitMode(s); v {
	case FitCrop, FitFill, FitMin:
		return v
	default:
		return FitMax
	}
}

type CropAnchor string

const (
	CropTop        CropAnchor = "top"
	CropBottom     CropAnchor = "bottom"
	CropLeft       CropAnchor = "left"
	CropRight      CropAnchor = "right"
	CropCenter     CropAnchor = "center"
	CropFocalPoint CropAnchor = "focalpoint"
)

func ParseCropAnchor(s string) CropAnchor {
	switch v := CropAnchor(s); v {
	case CropTop, CropBottom, CropLeft, CropRight, CropFocalPoint:
		return v
	default:
		return CropCenter
	}
}

type AutoMode string

const (
	AutoFormat   AutoMode = "format"
	AutoCompress AutoMode = "compress"
)

func ParseAutoMode(s string) AutoMode {
	if AutoMode(s) == AutoCompress {
		return AutoCompress
	}
	return AutoFormat
}

// Transform defaults.
const (
	DefaultFormat  = FormatAuto
	DefaultQuality = 80
	DefaultFit     = FitMax
	DefaultCrop    = CropCenter
	DefaultAuto    = AutoFormat
)

// ImageTransform is the set of directives handed to the image CDN. Empty/zero
// fields are not emitted.
type ImageTransform struct {
	Width   int
	Height  int
	Format  Format
	Quality int
	Fit     FitMode
	Crop    CropAnchor
	Auto    AutoMode
}
