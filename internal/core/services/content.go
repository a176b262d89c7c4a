package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
	"golf-content-service/internal/queries"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	DefaultCacheTTL  = 60 * time.Second

	DefaultFetchTimeout = 30 * time.Second
)

// ContentOptions tunes the content service.
type ContentOptions struct {
	CacheTTL  time.Duration
	BaseWidth int
	// FetchTimeout bounds a shared store fetch, which outlives any single caller.
	FetchTimeout time.Duration
}

// ContentService fetches documents from the content store and shapes them into
// render-ready views. Cache and snapshots are optional.
type ContentService struct {
	store     ports.ContentStore
	cache     ports.QueryCache
	snapshots ports.SnapshotRepository
	images    *ImageService
	videos    *VideoService

	cacheTTL     time.Duration
	baseWidth    int
	fetchTimeout time.Duration
	group        singleflight.Group
	now          func() time.Time
}

// NewContentService creates a new content service
func NewContentService(
	store ports.ContentStore,
	cache ports.QueryCache,
	snapshots ports.SnapshotRepository,
	images *ImageService,
	videos *VideoService,
	opts ContentOptions,
) *ContentService {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.BaseWidth <= 0 {
		opts.BaseWidth = DefaultBaseWidth
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	return &ContentService{
		store:     store,
		cache:     cache,
		snapshots: snapshots,
		images:    images,
		videos:    videos,
		cacheTTL:     opts.CacheTTL,
		baseWidth:    opts.BaseWidth,
		fetchTimeout: opts.FetchTimeout,
		now:          time.Now,
	}
}

// fetchResult is what a single query execution yields.
type fetchResult struct {
	doc   json.RawMessage
	stale bool
}

// fetch runs q through cache, store and snapshot fallback. Identical concurrent
// queries share one store round-trip; the shared fetch is detached from the
// caller that started it, and each caller stops waiting when its own ctx ends.
func (s *ContentService) fetch(ctx context.Context, q ports.Query) (fetchResult, error) {
	key := q.CacheKey()

	if s.cache != nil {
		doc, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).WithField("query", q.Name).Warn("query cache read failed")
		} else if ok {
			return fetchResult{doc: doc}, nil
		}
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		doc, err := s.store.Query(fetchCtx, q)
		if err != nil {
			return nil, err
		}
		s.remember(fetchCtx, q, key, doc)
		return doc, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return fetchResult{}, fmt.Errorf("%s: %w", q.Name, ctx.Err())
	case res = <-ch:
	}
	if res.Err == nil {
		return fetchResult{doc: res.Val.(json.RawMessage)}, nil
	}
	err := res.Err

	if s.snapshots != nil {
		snap, snapErr := s.snapshots.Get(ctx, key)
		if snapErr == nil {
			log.WithError(err).WithFields(log.Fields{
				"query": q.Name,
				"age":   snap.Age(s.now()).String(),
			}).Warn("content store failed, serving snapshot")
			return fetchResult{doc: snap.Document, stale: true}, nil
		}
		if !errors.Is(snapErr, domain.ErrSnapshotNotFound) {
			log.WithError(snapErr).WithField("query", q.Name).Warn("snapshot read failed")
		}
	}
	return fetchResult{}, fmt.Errorf("%s: %w", q.Name, err)
}

// remember writes a fresh non-null result to the cache and snapshot store.
// Failures are logged and otherwise ignored.
func (s *ContentService) remember(ctx context.Context, q ports.Query, key string, doc json.RawMessage) {
	if isNull(doc) {
		return
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, doc, s.cacheTTL); err != nil {
			log.WithError(err).WithField("query", q.Name).Warn("query cache write failed")
		}
	}
	if s.snapshots != nil {
		snap := &domain.DocumentSnapshot{
			Key:       key,
			QueryName: q.Name,
			Document:  doc,
			FetchedAt: s.now(),
		}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			log.WithError(err).WithField("query", q.Name).Warn("snapshot write failed")
		}
	}
}

func isNull(doc json.RawMessage) bool {
	trimmed := bytes.TrimSpace(doc)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decode unmarshals doc into a new T; a null document yields notFound.
func decode[T any](doc json.RawMessage, notFound error) (*T, error) {
	if isNull(doc) {
		return nil, notFound
	}
	var out T
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}
	return &out, nil
}

func normalizeSlug(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", domain.ErrInvalidSlug
	}
	return slug, nil
}

// NormalizeLimit applies the default and the upper bound; negatives are rejected.
func NormalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, domain.ErrInvalidLimit
	case limit == 0:
		return DefaultListLimit, nil
	case limit > MaxListLimit:
		return MaxListLimit, nil
	default:
		return limit, nil
	}
}

// ============================================================================
// Articles
// ============================================================================

func (s *ContentService) GetArticle(ctx context.Context, slug string) (*ArticleView, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, queries.Article.Bind(map[string]any{"slug": slug}))
	if err != nil {
		return nil, err
	}
	article, err := decode[domain.Article](res.doc, domain.ErrArticleNotFound)
	if err != nil {
		return nil, err
	}

	view, err := s.articleView(article)
	if err != nil {
		return nil, err
	}
	view.Stale = res.stale
	return view, nil
}

func (s *ContentService) ListArticles(ctx context.Context, limit int) ([]ArticleSummary, error) {
	return s.listArticles(ctx, queries.Articles, limit)
}

func (s *ContentService) ListFeaturedArticles(ctx context.Context, limit int) ([]ArticleSummary, error) {
	return s.listArticles(ctx, queries.FeaturedArticles, limit)
}

func (s *ContentService) listArticles(ctx context.Context, tmpl queries.Template, limit int) ([]ArticleSummary, error) {
	limit, err := NormalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, tmpl.Bind(map[string]any{"limit": limit}))
	if err != nil {
		return nil, err
	}
	if isNull(res.doc) {
		return []ArticleSummary{}, nil
	}
	var articles []domain.Article
	if err := json.Unmarshal(res.doc, &articles); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}

	out := make([]ArticleSummary, 0, len(articles))
	for i := range articles {
		out = append(out, s.articleSummary(&articles[i]))
	}
	return out, nil
}

// ============================================================================
// Equipment
// ============================================================================

func (s *ContentService) GetClub(ctx context.Context, slug string) (*ClubView, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, queries.Club.Bind(map[string]any{"slug": slug}))
	if err != nil {
		return nil, err
	}
	club, err := decode[domain.Club](res.doc, domain.ErrClubNotFound)
	if err != nil {
		return nil, err
	}

	view := s.clubView(club)
	view.Stale = res.stale
	return &view, nil
}

func (s *ContentService) GetBuyingGuide(ctx context.Context, slug string) (*BuyingGuideView, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, queries.BuyingGuide.Bind(map[string]any{"slug": slug}))
	if err != nil {
		return nil, err
	}
	guide, err := decode[domain.BuyingGuide](res.doc, domain.ErrBuyingGuideNotFound)
	if err != nil {
		return nil, err
	}

	view := s.buyingGuideView(guide)
	view.Stale = res.stale
	return view, nil
}

func (s *ContentService) GetBrand(ctx context.Context, slug string) (*BrandView, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, queries.Brand.Bind(map[string]any{"slug": slug}))
	if err != nil {
		return nil, err
	}
	brand, err := decode[domain.Brand](res.doc, domain.ErrBrandNotFound)
	if err != nil {
		return nil, err
	}

	view := s.brandView(brand)
	view.Stale = res.stale
	return view, nil
}

func (s *ContentService) ListFeaturedClubs(ctx context.Context, limit int) ([]ClubView, error) {
	limit, err := NormalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.listClubs(ctx, queries.FeaturedClubs.Bind(map[string]any{"limit": limit}))
}

// ListHotListGold returns gold-award clubs, highest hot list score first.
func (s *ContentService) ListHotListGold(ctx context.Context) ([]ClubView, error) {
	return s.listClubs(ctx, queries.HotListGold.Bind(nil))
}

func (s *ContentService) listClubs(ctx context.Context, q ports.Query) ([]ClubView, error) {
	res, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if isNull(res.doc) {
		return []ClubView{}, nil
	}
	var clubs []domain.Club
	if err := json.Unmarshal(res.doc, &clubs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}

	out := make([]ClubView, 0, len(clubs))
	for i := range clubs {
		view := s.clubView(&clubs[i])
		view.Stale = res.stale
		out = append(out, view)
	}
	return out, nil
}

// ============================================================================
// Video
// ============================================================================

func (s *ContentService) GetVideoEmbed(ctx context.Context, slug, playerID string) (*VideoView, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	res, err := s.fetch(ctx, queries.ExternalVideo.Bind(map[string]any{"slug": slug}))
	if err != nil {
		return nil, err
	}
	video, err := decode[domain.ExternalVideo](res.doc, domain.ErrVideoNotFound)
	if err != nil {
		return nil, err
	}

	embed, err := s.videos.EmbedData(video, playerID)
	if err != nil {
		return nil, err
	}
	return &VideoView{
		ID:           video.ID,
		Title:        video.Title,
		Slug:         video.Slug.Current,
		Description:  video.Description,
		Duration:     video.Duration,
		Category:     video.Category,
		PublishedAt:  video.PublishedAt,
		Transcript:   video.Transcript,
		Embed:        embed,
		ThumbnailURL: s.thumbnailURL(video.Thumbnail),
		Stale:        res.stale,
	}, nil
}

func (s *ContentService) thumbnailURL(img *domain.ImageFile) string {
	if img == nil || img.Asset.IsZero() {
		return ""
	}
	ref := &domain.ImageReference{Asset: &domain.ImageAsset{Image: img}}
	return s.images.ImageURL(ref, ImageURLOptions{Width: WidthDesktop, Format: domain.FormatWebP})
}

// IsAvailable checks if the content store is reachable
func (s *ContentService) IsAvailable(ctx context.Context) bool {
	if s.store == nil {
		return false
	}
	return s.store.IsAvailable(ctx)
}
