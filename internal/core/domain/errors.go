package domain

import "errors"

// ============================================================================
// Content Errors
// ============================================================================

// Not found errors
var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrClubNotFound        = errors.New("club not found")
	ErrBuyingGuideNotFound = errors.New("buying guide not found")
	ErrBrandNotFound       = errors.New("brand not found")
	ErrVideoNotFound       = errors.New("video not found")
	ErrSnapshotNotFound    = errors.New("document snapshot not found")
)

// Validation errors
var (
	ErrInvalidSlug      = errors.New("slug is required")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrInvalidReference = errors.New("image reference is required")
)

// ============================================================================
// Media Errors
// ============================================================================

var (
	// ErrUnsupportedVideoPlatform signals a document/schema mismatch that has to be
	// fixed upstream; it is never recovered from at runtime.
	ErrUnsupportedVideoPlatform = errors.New("unsupported video platform")
	ErrMalformedAssetRef        = errors.New("malformed asset reference")
)

// ============================================================================
// CMS Errors
// ============================================================================

var (
	ErrContentStoreUnavailable = errors.New("content store unavailable")
	ErrQueryFailed             = errors.New("content query failed")
)
