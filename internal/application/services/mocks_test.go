package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amacity/storefront/internal/domain/entities"
)

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

type MockSearchAnalyticsRepository struct {
	mock.Mock
}

func (m *MockSearchAnalyticsRepository) Insert(ctx context.Context, analytic *entities.SearchAnalytic) error {
	args := m.Called(ctx, analytic)
	return args.Error(0)
}

func (m *MockSearchAnalyticsRepository) MarkClicked(ctx context.Context, session string, productID int64, term string) error {
	args := m.Called(ctx, session, productID, term)
	return args.Error(0)
}

func (m *MockSearchAnalyticsRepository) ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockSearchAnalyticsRepository) PopularByStore(ctx context.Context, limit int) ([]*entities.PopularProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PopularProduct), args.Error(1)
}

type MockProductIndexRepository struct {
	mock.Mock
}

func (m *MockProductIndexRepository) Index(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductIndexRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductIndexRepository) Suggest(ctx context.Context, query string, limit int) ([]*entities.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

type MockSearchRecorder struct {
	mock.Mock
}

func (m *MockSearchRecorder) RecordSearch(ctx context.Context, session, term string, productID, storeID *int64) {
	m.Called(ctx, session, term, productID, storeID)
}
