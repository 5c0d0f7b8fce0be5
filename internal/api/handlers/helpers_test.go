package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/session"
)

// Handlers are exercised against real services wired to mocked repositories,
// so each test covers the full degrade-to-empty path the client sees.

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) List(ctx context.Context) ([]*entities.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id int64) (*entities.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Store), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListInStock(ctx context.Context) ([]*entities.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListByStore(ctx context.Context, storeID int64) ([]*entities.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementSearchCount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Insert(ctx context.Context, analytic *entities.SearchAnalytic) error {
	args := m.Called(ctx, analytic)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) MarkClicked(ctx context.Context, sess string, productID int64, term string) error {
	args := m.Called(ctx, sess, productID, term)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockAnalyticsRepository) PopularByStore(ctx context.Context, limit int) ([]*entities.PopularProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PopularProduct), args.Error(1)
}

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), "amacity_session")
}
