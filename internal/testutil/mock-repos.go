package testutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"golf-content-service/internal/core/domain"
	ports "golf-content-service/internal/core/ports/output"
)

// MockContentStore is a mock of ContentStore.
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) Query(ctx context.Context, q ports.Query) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockContentStore) IsAvailable(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// MockQueryCache is a mock of QueryCache.
type MockQueryCache struct {
	mock.Mock
}

func (m *MockQueryCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(json.RawMessage), args.Bool(1), args.Error(2)
}

func (m *MockQueryCache) Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error {
	args := m.Called(ctx, key, doc, ttl)
	return args.Error(0)
}

// MockSnapshotRepo is a mock of SnapshotRepository.
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Save(ctx context.Context, s *domain.DocumentSnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Get(ctx context.Context, key string) (*domain.DocumentSnapshot, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentSnapshot), args.Error(1)
}

func (m *MockSnapshotRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockImageURLBuilder is a mock of ImageURLBuilder.
type MockImageURLBuilder struct {
	mock.Mock
}

func (m *MockImageURLBuilder) ImageURL(src *domain.AssetLocator, t domain.ImageTransform) (string, error) {
	args := m.Called(src, t)
	return args.String(0), args.Error(1)
}

// MockFileURLBuilder is a mock of FileURLBuilder.
type MockFileURLBuilder struct {
	mock.Mock
}

func (m *MockFileURLBuilder) FileURL(ref string) (string, error) {
	args := m.Called(ref)
	return args.String(0), args.Error(1)
}
