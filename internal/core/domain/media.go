package domain

// MediaReference is an embedded pointer from a content document to a DAM asset.
// Implementations must be safe to call on a nil receiver.
type MediaReference interface {
	HasAsset() bool
}

// AssetLocator is the low-level storage pointer of a file held by the CMS
// (sanity.imageAsset / sanity.fileAsset). Depending on the projection it is either
// dereferenced (ID, URL) or a bare reference (Ref).
type AssetLocator struct {
	ID       string         `json:"_id,omitempty"`
	Ref      string         `json:"_ref,omitempty"`
	URL      string         `json:"url,omitempty"`
	Metadata *AssetMetadata `json:"metadata,omitempty"`
}

func (l *AssetLocator) IsZero() bool {
	return l == nil || (l.ID == "" && l.Ref == "" && l.URL == "")
}

// Identifier returns the document id when dereferenced, else the raw reference.
func (l *AssetLocator) Identifier() string {
	if l == nil {
		return ""
	}
	if l.ID != "" {
		return l.ID
	}
	return l.Ref
}

type AssetMetadata struct {
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type Dimensions struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
}

// ImageFile is an image field: a wrapper around a storage locator.
type ImageFile struct {
	Asset *AssetLocator `json:"asset,omitempty"`
}

// ImageAsset is the DAM record behind an image reference. Credit and the default
// caption/alt travel with the asset; Image wraps the stored file.
type ImageAsset struct {
	ID             string     `json:"_id,omitempty"`
	URL            string     `json:"url,omitempty"`
	Title          string     `json:"title,omitempty"`
	Credit         string     `json:"credit,omitempty"`
	DefaultCaption string     `json:"defaultCaption,omitempty"`
	DefaultAlt     string     `json:"defaultAlt,omitempty"`
	Image          *ImageFile `json:"image,omitempty"`
}

func (a *ImageAsset) IsZero() bool {
	if a == nil {
		return true
	}
	return a.ID == "" && a.URL == "" && a.Title == "" && a.Credit == "" &&
		a.DefaultCaption == "" && a.DefaultAlt == "" && (a.Image == nil || a.Image.Asset.IsZero())
}

// Source returns the locator an image transform should target: the nested
// storage asset when present, otherwise the record itself.
func (a *ImageAsset) Source() *AssetLocator {
	if a == nil {
		return nil
	}
	if a.Image != nil && !a.Image.Asset.IsZero() {
		return a.Image.Asset
	}
	return &AssetLocator{ID: a.ID, URL: a.URL}
}

type ImageReference struct {
	Key            string          `json:"_key,omitempty"`
	Asset          *ImageAsset     `json:"asset,omitempty"`
	CustomCaption  string          `json:"customCaption,omitempty"`
	CustomAlt      string          `json:"customAlt,omitempty"`
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
}

func (r *ImageReference) HasAsset() bool {
	return r != nil && !r.Asset.IsZero()
}

// EffectiveCaption prefers the usage-scoped caption over the asset default.
func (r *ImageReference) EffectiveCaption() string {
	if !r.HasAsset() {
		return ""
	}
	if r.CustomCaption != "" {
		return r.CustomCaption
	}
	return r.Asset.DefaultCaption
}

func (r *ImageReference) EffectiveAlt() string {
	if !r.HasAsset() {
		return ""
	}
	if r.CustomAlt != "" {
		return r.CustomAlt
	}
	return r.Asset.DefaultAlt
}

// PhotoCredit has no override tier: it always comes from the asset.
func (r *ImageReference) PhotoCredit() string {
	if !r.HasAsset() {
		return ""
	}
	return r.Asset.Credit
}

// Options returns the display options with unset fields filled by their defaults.
func (r *ImageReference) Options() DisplayOptions {
	if r == nil || r.DisplayOptions == nil {
		return DisplayOptions{Size: SizeMedium, Alignment: AlignCenter, Crop: CropRatioDefault}
	}
	return r.DisplayOptions.Normalize()
}

// Resolve returns the first reference of [primary, fallbacks...] with a
// resolvable asset, or the zero value of R when none has one.
func Resolve[R MediaReference](primary R, fallbacks ...R) R {
	if hasAsset(primary) {
		return primary
	}
	for _, fb := range fallbacks {
		if hasAsset(fb) {
			return fb
		}
	}
	var zero R
	return zero
}

func hasAsset[R MediaReference](r R) bool {
	return any(r) != nil && r.HasAsset()
}

func ResolveImage(primary *ImageReference, fallbacks ...*ImageReference) *ImageReference {
	return Resolve(primary, fallbacks...)
}
