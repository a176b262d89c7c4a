package domain

import "strings"

// Editorial display intent attached to a media reference.

type DisplaySize string

const (
	SizeSmall  DisplaySize = "small"
	SizeMedium DisplaySize = "medium"
	SizeLarge  DisplaySize = "large"
	SizeFull   DisplaySize = "full"
)

// ParseDisplaySize never fails: unknown and empty values fall back to medium,
// the schema's initial value.
func ParseDisplaySize(s string) DisplaySize {
	switch v := DisplaySize(strings.ToLower(strings.TrimSpace(s))); v {
	case SizeSmall, SizeMedium, SizeLarge, SizeFull:
		return v
	default:
		return SizeMedium
	}
}

// WidthFactor is the fraction of the base width a size occupies.
func (s DisplaySize) WidthFactor() float64 {
	switch s {
	case SizeSmall:
		return 0.5
	case SizeLarge:
		return 1.0
	case SizeFull:
		return 1.2
	default:
		return 0.75
	}
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

func ParseAlignment(s string) Alignment {
	switch v := Alignment(strings.ToLower(strings.TrimSpace(s))); v {
	case AlignLeft, AlignCenter, AlignRight:
		return v
	default:
		return AlignCenter
	}
}

type CropRatio string

const (
	CropRatioDefault  CropRatio = "default"
	CropRatioSquare   CropRatio = "square"
	CropRatioWide     CropRatio = "wide"
	CropRatioPortrait CropRatio = "portrait"
)

// ParseCropRatio maps unknown values to default, which keeps the source aspect ratio.
func ParseCropRatio(s string) CropRatio {
	switch v := CropRatio(strings.ToLower(strings.TrimSpace(s))); v {
	case CropRatioSquare, CropRatioWide, CropRatioPortrait:
		return v
	default:
		return CropRatioDefault
	}
}

// Height derives a height for the given width, or 0 when the ratio keeps the
// source aspect ratio. Results are rounded half up.
func (c CropRatio) Height(width int) int {
	switch c {
	case CropRatioSquare:
		return width
	case CropRatioWide:
		return roundHalfUp(float64(width) * 9 / 16)
	case CropRatioPortrait:
		return roundHalfUp(float64(width) * 4 / 3)
	default:
		return 0
	}
}

type DisplayOptions struct {
	Size      DisplaySize `json:"size,omitempty"`
	Alignment Alignment   `json:"alignment,omitempty"`
	Crop      CropRatio   `json:"crop,omitempty"`
}

func (o DisplayOptions) Normalize() DisplayOptions {
	return DisplayOptions{
		Size:      ParseDisplaySize(string(o.Size)),
		Alignment: ParseAlignment(string(o.Alignment)),
		Crop:      ParseCropRatio(string(o.Crop)),
	}
}

func roundHalfUp(f float64) int {
	return int(f + 0.5)
}

// ScaleWidth applies a size factor to a base width.
func ScaleWidth(base int, size DisplaySize) int {
	return roundHalfUp(float64(base) * size.WidthFactor())
}
