package services

import (
	"encoding/json"

	"golf-content-service/internal/core/domain"
)

// RenderedImage is an image reference with every URL and text a page needs.
type RenderedImage struct {
	URL        string               `json:"url"`
	Responsive *ResponsiveImageURLs `json:"responsive,omitempty"`
	Display    string               `json:"display_url,omitempty"`
	Caption    string               `json:"caption,omitempty"`
	Alt        string               `json:"alt,omitempty"`
	Credit     string               `json:"credit,omitempty"`
	Size       domain.DisplaySize   `json:"size"`
	Alignment  domain.Alignment     `json:"alignment"`
	Crop       domain.CropRatio     `json:"crop"`
}

type AuthorView struct {
	Name  string            `json:"name"`
	Slug  string            `json:"slug,omitempty"`
	Bio   string            `json:"bio,omitempty"`
	Role  domain.AuthorRole `json:"role,omitempty"`
	Order int               `json:"order"`
}

type BodyBlockView struct {
	Type        string            `json:"type"`
	Key         string            `json:"key,omitempty"`
	Image       *RenderedImage    `json:"image,omitempty"`
	Video       *EmbedData        `json:"video,omitempty"`
	DisplayMode string            `json:"display_mode,omitempty"`
	NativeVideo *NativeVideoProps `json:"native_video,omitempty"`
	Content     json.RawMessage   `json:"content,omitempty"`
}

type ArticleView struct {
	ID                 string                     `json:"id"`
	Title              string                     `json:"title"`
	Subtitle           string                     `json:"subtitle,omitempty"`
	Slug               string                     `json:"slug"`
	Category           string                     `json:"category,omitempty"`
	Location           string                     `json:"location,omitempty"`
	PublishedAt        string                     `json:"published_at,omitempty"`
	Excerpt            string                     `json:"excerpt,omitempty"`
	Featured           bool                       `json:"featured"`
	Status             domain.ArticleStatus       `json:"status,omitempty"`
	Byline             string                     `json:"byline,omitempty"`
	PrimaryAuthor      *AuthorView                `json:"primary_author,omitempty"`
	Authors            []AuthorView               `json:"authors"`
	LeadImage          *RenderedImage             `json:"lead_image,omitempty"`
	ToutImage          *RenderedImage             `json:"tout_image,omitempty"`
	SocialImageURL     string                     `json:"social_image_url,omitempty"`
	Body               []BodyBlockView            `json:"body"`
	Tags               []domain.Tag               `json:"tags,omitempty"`
	RelatedPlayers     []domain.PlayerSummary     `json:"related_players,omitempty"`
	RelatedTournaments []domain.TournamentSummary `json:"related_tournaments,omitempty"`
	SEO                *domain.SEO                `json:"seo,omitempty"`
	Stale              bool                       `json:"stale,omitempty"`
}

type ArticleSummary struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Slug        string         `json:"slug"`
	Category    string         `json:"category,omitempty"`
	PublishedAt string         `json:"published_at,omitempty"`
	Excerpt     string         `json:"excerpt,omitempty"`
	Featured    bool           `json:"featured"`
	Byline      string         `json:"byline,omitempty"`
	Thumbnail   *RenderedImage `json:"thumbnail,omitempty"`
	Tags        []domain.Tag   `json:"tags,omitempty"`
}

type ClubView struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	FullName        string                     `json:"full_name"`
	Slug            string                     `json:"slug"`
	ClubType        string                     `json:"club_type"`
	ClubSubType     string                     `json:"club_sub_type,omitempty"`
	Brand           string                     `json:"brand,omitempty"`
	Price           string                     `json:"price,omitempty"`
	Rating          string                     `json:"rating,omitempty"`
	TargetHandicaps string                     `json:"target_handicaps,omitempty"`
	Adjustability   string                     `json:"adjustability"`
	Lofts           string                     `json:"lofts,omitempty"`
	Awards          []string                   `json:"awards"`
	HotListScore    *domain.HotListScore       `json:"hot_list_score,omitempty"`
	WhyWeLikeIt     string                     `json:"why_we_like_it,omitempty"`
	BuyNowURL       string                     `json:"buy_now_url,omitempty"`
	Featured        bool                       `json:"featured"`
	Specifications  *domain.ClubSpecifications `json:"specifications,omitempty"`
	HeroImage       *RenderedImage             `json:"hero_image,omitempty"`
	ToeView         *RenderedImage             `json:"toe_view,omitempty"`
	AddressView     *RenderedImage             `json:"address_view,omitempty"`
	SocialImageURL  string                     `json:"social_image_url,omitempty"`
	Stale           bool                       `json:"stale,omitempty"`
}

type BuyingGuideView struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Category           string     `json:"category,omitempty"`
	ClubType           string     `json:"club_type,omitempty"`
	ContentType        string     `json:"content_type,omitempty"`
	Year               int        `json:"year,omitempty"`
	PublishedAt        string     `json:"published_at,omitempty"`
	Introduction       any        `json:"introduction,omitempty"`
	EvaluationCriteria any        `json:"evaluation_criteria,omitempty"`
	Clubs              []ClubView `json:"clubs"`
	Stale              bool       `json:"stale,omitempty"`
}

type BrandView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Website     string     `json:"website,omitempty"`
	Description string     `json:"description,omitempty"`
	Specialties []string   `json:"specialties,omitempty"`
	LogoURL     string     `json:"logo_url,omitempty"`
	Clubs       []ClubView `json:"clubs"`
	Stale       bool       `json:"stale,omitempty"`
}

type VideoView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Category     string     `json:"category,omitempty"`
	PublishedAt  string     `json:"published_at,omitempty"`
	Transcript   string     `json:"transcript,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Embed        *EmbedData `json:"embed"`
	Stale        bool       `json:"stale,omitempty"`
}

// ============================================================================
// Mapping
// ============================================================================

func slugOf(s *domain.Slug) string {
	if s == nil {
		return ""
	}
	return s.Current
}

// RenderImage resolves URLs and text for ref; nil when ref has no asset.
func (s *ImageService) RenderImage(ref *domain.ImageReference, baseWidth int) *RenderedImage {
	if !ref.HasAsset() {
		return nil
	}
	opts := ref.Options()
	return &RenderedImage{
		URL:        s.ImageURL(ref, ImageURLOptions{}),
		Responsive: s.ResponsiveImageURLs(ref),
		Display:    s.ImageWithDisplayOptions(ref, baseWidth),
		Caption:    ref.EffectiveCaption(),
		Alt:        ref.EffectiveAlt(),
		Credit:     ref.PhotoCredit(),
		Size:       opts.Size,
		Alignment:  opts.Alignment,
		Crop:       opts.Crop,
	}
}

func authorView(a domain.ArticleAuthor) AuthorView {
	v := AuthorView{Role: a.Role, Order: a.SortKey(), Name: a.Name()}
	if a.Author != nil {
		v.Slug = slugOf(a.Author.Slug)
		v.Bio = a.Author.Bio
	}
	return v
}

func (s *ContentService) articleView(a *domain.Article) (*ArticleView, error) {
	attributions := a.Attributions()

	view := &ArticleView{
		ID:                 a.ID,
		Title:              a.Title,
		Subtitle:           a.Subtitle,
		Slug:               slugOf(a.Slug),
		Category:           a.Category,
		Location:           a.Location,
		PublishedAt:        a.PublishedAt,
		Excerpt:            a.Excerpt,
		Featured:           a.Featured,
		Status:             a.Status,
		Byline:             domain.FormatByline(attributions),
		Authors:            make([]AuthorView, 0, len(attributions)),
		Tags:               a.Tags,
		RelatedPlayers:     a.RelatedPlayers,
		RelatedTournaments: a.RelatedTournaments,
		SEO:                a.SEO,
		Body:               make([]BodyBlockView, 0, len(a.Body)),
	}
	for _, author := range domain.SortAuthors(attributions) {
		view.Authors = append(view.Authors, authorView(author))
	}
	if primary := domain.PrimaryAuthor(attributions); primary != nil {
		pv := authorView(*primary)
		view.PrimaryAuthor = &pv
	}

	lead := a.LeadImage
	view.LeadImage = s.images.RenderImage(lead, s.baseWidth)
	view.ToutImage = s.images.RenderImage(domain.ResolveImage(a.ToutImage, lead), s.baseWidth)
	view.SocialImageURL = s.images.SocialImageURL(domain.ResolveImage(a.SocialImage, lead, a.ToutImage))

	for _, block := range a.Body {
		bv, err := s.bodyBlockView(block)
		if err != nil {
			return nil, err
		}
		view.Body = append(view.Body, bv)
	}
	return view, nil
}

func (s *ContentService) bodyBlockView(b domain.BodyBlock) (BodyBlockView, error) {
	bv := BodyBlockView{Type: b.Type, Key: b.Key}
	switch b.Type {
	case domain.BlockTypeImage:
		bv.Image = s.images.RenderImage(b.Image, s.baseWidth)
	case domain.BlockTypeExternalVideo:
		if b.ExternalVideo.HasAsset() {
			embed, err := s.videos.EmbedData(b.ExternalVideo.Video, "")
			if err != nil {
				return bv, err
			}
			bv.Video = embed
		}
		bv.DisplayMode = string(b.ExternalVideo.Mode())
	case domain.BlockTypeNativeVideo:
		bv.NativeVideo = s.videos.NativeVideoProps(b.NativeVideo)
	default:
		bv.Content = b.Raw
	}
	return bv, nil
}

func (s *ContentService) articleSummary(a *domain.Article) ArticleSummary {
	thumb := a.Thumbnail
	if !thumb.HasAsset() {
		thumb = domain.ResolveImage(a.ToutImage, a.LeadImage)
	}
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Slug:        slugOf(a.Slug),
		Category:    a.Category,
		PublishedAt: a.PublishedAt,
		Excerpt:     a.Excerpt,
		Featured:    a.Featured,
		Byline:      domain.FormatByline(a.Attributions()),
		Thumbnail:   s.images.RenderImage(thumb, s.baseWidth),
		Tags:        a.Tags,
	}
}

func (s *ContentService) clubView(c *domain.Club) ClubView {
	v := ClubView{
		ID:              c.ID,
		Name:            c.Name,
		FullName:        domain.FullClubName(c),
		Slug:            slugOf(c.Slug),
		ClubType:        domain.ClubTypeDisplay(c),
		ClubSubType:     domain.ClubSubTypeDisplay(c),
		Price:           domain.PriceDisplay(c),
		Rating:          domain.PerformanceRatingDisplay(c),
		TargetHandicaps: domain.TargetHandicapDisplay(c),
		Adjustability:   domain.AdjustabilityDisplay(c),
		Lofts:           domain.LoftsDisplay(c),
		Awards:          domain.AwardBadges(c),
		HotListScore:    c.HotListScore,
		WhyWeLikeIt:     c.WhyWeLikeIt,
		BuyNowURL:       c.BuyNowURL,
		Featured:        c.Featured,
		Specifications:  c.Specifications,
		HeroImage:       s.images.RenderImage(c.HeroImage, s.baseWidth),
		SocialImageURL:  s.images.SocialImageURL(c.HeroImage),
	}
	if c.Brand != nil {
		v.Brand = c.Brand.Name
	}
	if c.ProductImages != nil {
		v.ToeView = s.images.RenderImage(c.ProductImages.ToeView, s.baseWidth)
		v.AddressView = s.images.RenderImage(c.ProductImages.AddressView, s.baseWidth)
	}
	return v
}

func (s *ContentService) clubViews(clubs []domain.Club) []ClubView {
	sorted := domain.SortClubsByOrder(clubs)
	out := make([]ClubView, 0, len(sorted))
	for i := range sorted {
		out = append(out, s.clubView(&sorted[i]))
	}
	return out
}

func (s *ContentService) buyingGuideView(g *domain.BuyingGuide) *BuyingGuideView {
	return &BuyingGuideView{
		ID:                 g.ID,
		Title:              g.Title,
		Slug:               slugOf(g.Slug),
		Category:           g.Category,
		ClubType:           g.ClubType,
		ContentType:        g.ContentType,
		Year:               g.Year,
		PublishedAt:        g.PublishedAt,
		Introduction:       g.Introduction,
		EvaluationCriteria: g.EvaluationCriteria,
		Clubs:              s.clubViews(g.Clubs),
	}
}

func (s *ContentService) brandView(b *domain.Brand) *BrandView {
	return &BrandView{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        slugOf(b.Slug),
		Website:     b.Website,
		Description: b.Description,
		Specialties: b.Specialties,
		LogoURL:     s.thumbnailURL(b.Logo),
		Clubs:       s.clubViews(b.Clubs),
	}
}
