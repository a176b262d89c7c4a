package services

import (
	"fmt"

	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
)

const defaultPlayerID = "default"

type EmbedData struct {
	Platform  domain.VideoPlatform `json:"platform"`
	AccountID string               `json:"account_id,omitempty"`
	PlayerID  string               `json:"player_id,omitempty"`
	VideoID   string               `json:"video_id"`
	EmbedURL  string               `json:"embed_url"`
}

type NativeVideoProps struct {
	Src         string `json:"src"`
	Poster      string `json:"poster,omitempty"`
	Autoplay    bool   `json:"autoplay"`
	Loop        bool   `json:"loop"`
	Controls    bool   `json:"controls"`
	Muted       bool   `json:"muted"`
	PlaysInline bool   `json:"plays_inline"`
	Caption     string `json:"caption,omitempty"`
	Credit      string `json:"credit,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// VideoService builds player embeds for external platforms and playback props
// for DAM-hosted videos.
type VideoService struct {
	brightcoveAccountID string
	files               ports.FileURLBuilder
	images              *ImageService
}

// NewVideoService creates a new video service
func NewVideoService(brightcoveAccountID string, files ports.FileURLBuilder, images *ImageService) *VideoService {
	return &VideoService{
		brightcoveAccountID: brightcoveAccountID,
		files:               files,
		images:              images,
	}
}

// EmbedData picks the player id from playerID, then the video's own, then "default".
// An unknown platform is a hard failure.
func (s *VideoService) EmbedData(video *domain.ExternalVideo, playerID string) (*EmbedData, error) {
	if video == nil {
		return nil, domain.ErrVideoNotFound
	}

	switch video.Platform {
	case domain.PlatformBrightcove:
		if playerID == "" {
			playerID = video.PlayerID
		}
		if playerID == "" {
			playerID = defaultPlayerID
		}
		return &EmbedData{
			Platform:  video.Platform,
			AccountID: s.brightcoveAccountID,
			PlayerID:  playerID,
			VideoID:   video.VideoID,
			EmbedURL: fmt.Sprintf("https://players.brightcove.net/%s/%s_default/index.html?videoId=%s",
				s.brightcoveAccountID, playerID, video.VideoID),
		}, nil
	case domain.PlatformYouTube:
		return &EmbedData{
			Platform: video.Platform,
			VideoID:  video.VideoID,
			EmbedURL: "https://www.youtube.com/embed/" + video.VideoID,
		}, nil
	case domain.PlatformVimeo:
		return &EmbedData{
			Platform: video.Platform,
			VideoID:  video.VideoID,
			EmbedURL: "https://player.vimeo.com/video/" + video.VideoID,
		}, nil
	case domain.PlatformWistia:
		return &EmbedData{
			Platform: video.Platform,
			VideoID:  video.VideoID,
			EmbedURL: "https://fast.wistia.net/embed/iframe/" + video.VideoID,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedVideoPlatform, video.Platform)
	}
}

// NativeVideoURL returns "" when the asset has no file or the reference is malformed.
func (s *VideoService) NativeVideoURL(asset *domain.NativeVideoAsset) string {
	if asset == nil || asset.VideoFile == nil || asset.VideoFile.Asset.IsZero() {
		return ""
	}
	if u := asset.VideoFile.Asset.URL; u != "" {
		return u
	}
	if s.files == nil {
		return ""
	}
	url, err := s.files.FileURL(asset.VideoFile.Asset.Identifier())
	if err != nil {
		return ""
	}
	return url
}

func (s *VideoService) NativeVideoProps(ref *domain.NativeVideoReference) *NativeVideoProps {
	if !ref.HasAsset() {
		return nil
	}

	props := &NativeVideoProps{
		Src:      s.NativeVideoURL(ref.Asset),
		Autoplay: ref.Autoplay,
		Loop:     ref.Loop,
		Controls: ref.ShowControls(),
		// browsers only autoplay muted video
		Muted:       ref.Autoplay,
		PlaysInline: true,
		Caption:     ref.EffectiveCaption(),
		Credit:      ref.Credit(),
		Duration:    domain.FormatDuration(ref.Asset.Duration),
	}
	if s.images != nil && ref.Asset.Thumbnail != nil && !ref.Asset.Thumbnail.Asset.IsZero() {
		poster := &domain.ImageReference{Asset: &domain.ImageAsset{Image: ref.Asset.Thumbnail}}
		props.Poster = s.images.ImageURL(poster, ImageURLOptions{})
	}
	return props
}
