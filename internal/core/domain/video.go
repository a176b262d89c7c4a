package domain

import "fmt"

type VideoPlatform string

const (
	PlatformBrightcove VideoPlatform = "brightcove"
	PlatformYouTube    VideoPlatform = "youtube"
	PlatformVimeo      VideoPlatform = "vimeo"
	PlatformWistia     VideoPlatform = "wistia"
)

type DisplayMode string

const (
	DisplayModeInline DisplayMode = "inline"
	DisplayModeModal  DisplayMode = "modal"
)

type Slug struct {
	Current string `json:"current"`
}

type ExternalVideo struct {
	ID          string        `json:"_id,omitempty"`
	Title       string        `json:"title,omitempty"`
	Slug        Slug          `json:"slug"`
	Platform    VideoPlatform `json:"platform,omitempty"`
	VideoID     string        `json:"videoId,omitempty"`
	PlayerID    string        `json:"playerId,omitempty"`
	Description string        `json:"description,omitempty"`
	Thumbnail   *ImageFile    `json:"thumbnail,omitempty"`
	Duration    string        `json:"duration,omitempty"`
	PublishedAt string        `json:"publishedAt,omitempty"`
	Category    string        `json:"category,omitempty"`
	Transcript  string        `json:"transcript,omitempty"`
	Status      string        `json:"status,omitempty"`
}

type ExternalVideoReference struct {
	Key         string         `json:"_key,omitempty"`
	Video       *ExternalVideo `json:"video,omitempty"`
	DisplayMode DisplayMode    `json:"displayMode,omitempty"`
}

func (r *ExternalVideoReference) HasAsset() bool {
	return r != nil && r.Video != nil && r.Video.VideoID != ""
}

// Mode defaults to inline.
func (r *ExternalVideoReference) Mode() DisplayMode {
	if r == nil || r.DisplayMode != DisplayModeModal {
		return DisplayModeInline
	}
	return DisplayModeModal
}

type FileRef struct {
	Asset *AssetLocator `json:"asset,omitempty"`
}

type NativeVideoAsset struct {
	ID             string     `json:"_id,omitempty"`
	Title          string     `json:"title,omitempty"`
	VideoFile      *FileRef   `json:"videoFile,omitempty"`
	Thumbnail      *ImageFile `json:"thumbnail,omitempty"`
	Credit         string     `json:"credit,omitempty"`
	DefaultCaption string     `json:"defaultCaption,omitempty"`
	Duration       int        `json:"duration,omitempty"`
	AspectRatio    string     `json:"aspectRatio,omitempty"`
}

type NativeVideoReference struct {
	Key            string            `json:"_key,omitempty"`
	Asset          *NativeVideoAsset `json:"asset,omitempty"`
	CustomCaption  string            `json:"customCaption,omitempty"`
	Autoplay       bool              `json:"autoplay,omitempty"`
	Loop           bool              `json:"loop,omitempty"`
	Controls       *bool             `json:"controls,omitempty"`
	DisplayOptions *DisplayOptions   `json:"displayOptions,omitempty"`
}

func (r *NativeVideoReference) HasAsset() bool {
	return r != nil && r.Asset != nil && (r.Asset.ID != "" || r.Asset.VideoFile != nil)
}

func (r *NativeVideoReference) EffectiveCaption() string {
	if !r.HasAsset() {
		return ""
	}
	if r.CustomCaption != "" {
		return r.CustomCaption
	}
	return r.Asset.DefaultCaption
}

func (r *NativeVideoReference) Credit() string {
	if !r.HasAsset() {
		return ""
	}
	return r.Asset.Credit
}

// ShowControls defaults to true when the field was never set.
func (r *NativeVideoReference) ShowControls() bool {
	if r == nil || r.Controls == nil {
		return true
	}
	return *r.Controls
}

// FormatDuration renders seconds as m:ss; zero renders as "".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
