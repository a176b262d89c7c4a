package domain

import (
	"encoding/json"
	"fmt"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusReview    ArticleStatus = "review"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

type Tag struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug *Slug  `json:"slug,omitempty"`
}

type PlayerSummary struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Slug    *Slug  `json:"slug,omitempty"`
	Tour    string `json:"tour,omitempty"`
	Country string `json:"country,omitempty"`
}

type TournamentSummary struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Slug     *Slug  `json:"slug,omitempty"`
	Year     int    `json:"year,omitempty"`
	Location string `json:"location,omitempty"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

type Article struct {
	ID                 string              `json:"_id,omitempty"`
	Title              string              `json:"title,omitempty"`
	Subtitle           string              `json:"subtitle,omitempty"`
	Slug               *Slug               `json:"slug,omitempty"`
	Category           string              `json:"category,omitempty"`
	Location           string              `json:"location,omitempty"`
	PublishedAt        string              `json:"publishedAt,omitempty"`
	Excerpt            string              `json:"excerpt,omitempty"`
	Featured           bool                `json:"featured,omitempty"`
	Status             ArticleStatus       `json:"status,omitempty"`
	Author             *AuthorSummary      `json:"author,omitempty"`
	Authors            []ArticleAuthor     `json:"authors,omitempty"`
	LeadImage          *ImageReference     `json:"leadImage,omitempty"`
	ToutImage          *ImageReference     `json:"toutImage,omitempty"`
	SocialImage        *ImageReference     `json:"socialImage,omitempty"`
	Thumbnail          *ImageReference     `json:"thumbnail,omitempty"`
	Body               []BodyBlock         `json:"body,omitempty"`
	Tags               []Tag               `json:"tags,omitempty"`
	RelatedPlayers     []PlayerSummary     `json:"relatedPlayers,omitempty"`
	RelatedTournaments []TournamentSummary `json:"relatedTournaments,omitempty"`
	SEO                *SEO                `json:"seo,omitempty"`
}

// Attributions returns the ordered author list, falling back to the single
// author reference older documents carry.
func (a *Article) Attributions() []ArticleAuthor {
	if a == nil {
		return nil
	}
	if len(a.Authors) > 0 {
		return a.Authors
	}
	if a.Author != nil {
		return []ArticleAuthor{{Author: a.Author, Role: RoleAuthor, Order: defaultAuthorOrder}}
	}
	return nil
}

// Body block types.
const (
	BlockTypeText          = "block"
	BlockTypeQuote         = "quote"
	BlockTypeImage         = "imageReference"
	BlockTypeExternalVideo = "externalVideoReference"
	BlockTypeNativeVideo   = "nativeVideoReference"
)

// BodyBlock is one element of portable-text body content. Media blocks are
// decoded into their typed references; every block keeps its raw JSON.
type BodyBlock struct {
	Type          string
	Key           string
	Image         *ImageReference
	ExternalVideo *ExternalVideoReference
	NativeVideo   *NativeVideoReference
	Raw           json.RawMessage
}

func (b *BodyBlock) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"_type"`
		Key  string `json:"_key"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("decode body block: %w", err)
	}

	b.Type = head.Type
	b.Key = head.Key
	b.Raw = append(b.Raw[:0], data...)

	var target any
	switch head.Type {
	case BlockTypeImage:
		b.Image = &ImageReference{}
		target = b.Image
	case BlockTypeExternalVideo:
		b.ExternalVideo = &ExternalVideoReference{}
		target = b.ExternalVideo
	case BlockTypeNativeVideo:
		b.NativeVideo = &NativeVideoReference{}
		target = b.NativeVideo
	default:
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s block: %w", head.Type, err)
	}
	return nil
}

func (b BodyBlock) MarshalJSON() ([]byte, error) {
	if len(b.Raw) == 0 {
		return []byte("null"), nil
	}
	return b.Raw, nil
}
