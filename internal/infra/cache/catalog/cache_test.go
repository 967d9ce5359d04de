package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type providerMock struct {
	mock.Mock
}

func (m *providerMock) GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]*domain.Car)
	return cars, args.Error(1)
}

// unreachableClient указывает на порт, где никто не слушает
func unreachableClient(t *testing.T) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCache_GetCatalog_FallsBackWhenRedisIsDown(t *testing.T) {
	var logs bytes.Buffer
	provider := &providerMock{}
	filter := domain.CatalogFilter{OnlyAvailable: true}
	cars := []*domain.Car{{ID: 1, Name: "Renault Clio"}}
	provider.On("GetCatalog", mock.Anything, filter).Return(cars, nil).Once()

	cache := NewCache(unreachableClient(t), provider, time.Minute, logger.NewWithWriter(&logs, "info"))

	result, err := cache.GetCatalog(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, cars, result)
	assert.Contains(t, logs.String(), "CatalogCache: failed to read")
	assert.Contains(t, logs.String(), "CatalogCache: failed to write")
	provider.AssertExpectations(t)
}

func TestCache_GetCatalog_LogsMissAtDebug(t *testing.T) {
	provider := &providerMock{}
	filter := domain.CatalogFilter{SupplierIDs: []int64{7}}
	provider.On("GetCatalog", mock.Anything, filter).Return([]*domain.Car{{ID: 1}, {ID: 2}}, nil).Twice()

	var infoLogs bytes.Buffer
	_, err := NewCache(unreachableClient(t), provider, time.Minute, logger.NewWithWriter(&infoLogs, "info")).
		GetCatalog(context.Background(), filter)
	require.NoError(t, err)
	assert.NotContains(t, infoLogs.String(), "CatalogCache: miss")

	var debugLogs bytes.Buffer
	_, err = NewCache(unreachableClient(t), provider, time.Minute, logger.NewWithWriter(&debugLogs, "debug")).
		GetCatalog(context.Background(), filter)
	require.NoError(t, err)
	assert.Contains(t, debugLogs.String(), "CatalogCache: miss key="+keyPrefix+filter.Key()+", loaded 2 cars")
	provider.AssertExpectations(t)
}

func TestCache_GetCatalog_ProviderErrorIsReturned(t *testing.T) {
	var logs bytes.Buffer
	provider := &providerMock{}
	providerErr := errors.New("db is down")
	provider.On("GetCatalog", mock.Anything, mock.Anything).Return(nil, providerErr).Once()

	cache := NewCache(unreachableClient(t), provider, time.Minute, logger.NewWithWriter(&logs, "info"))

	result, err := cache.GetCatalog(context.Background(), domain.CatalogFilter{})

	assert.ErrorIs(t, err, providerErr)
	assert.Nil(t, result)
}

func TestCache_Invalidate_ReportsRedisError(t *testing.T) {
	var logs bytes.Buffer
	cache := NewCache(unreachableClient(t), &providerMock{}, 0, logger.NewWithWriter(&logs, "info"))

	err := cache.Invalidate(context.Background())

	assert.ErrorIs(t, err, ErrInvalidate)
	assert.Equal(t, DefaultTTL, cache.ttl)
}
