package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeev970/smartagri-go/internal/database"
	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/repository"
)

func newGraphService(t *testing.T, querier repository.Querier, redisClient *database.RedisClient) *GraphService {
	t.Helper()
	logger := newTestLogger()
	repo := repository.NewPriceRepositoryWithQuerier(querier, logger)
	return NewGraphService(repo, redisClient, 400, time.Minute, logger)
}

func graphRows(prices ...float64) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"date", "modal_price", "min_price", "max_price"})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		rows.AddRow(start.AddDate(0, 0, i).Format("2006-01-02"), p, p*0.95, p*1.05)
	}
	return rows
}

func TestGetGraphDataWithoutStoreFallsBackToSynthetic(t *testing.T) {
	svc := newGraphService(t, nil, nil)

	data, err := svc.GetGraphData(context.Background(), "Rice", "", "", 45)
	require.NoError(t, err)

	assert.True(t, data.Success)
	// Synthetic fallback series are capped at 30 days.
	assert.Len(t, data.Data, 30)
	assert.Equal(t, "Demo", data.Data[0].Source)
}

func TestGetGraphDataFromStore(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()
	mockPool.ExpectQuery("ORDER BY date ASC").
		WillReturnRows(graphRows(100, 110, 120, 130, 140, 150))

	svc := newGraphService(t, mockPool, nil)
	data, err := svc.GetGraphData(context.Background(), "Onion", "Maharashtra", "", 30)
	require.NoError(t, err)

	assert.True(t, data.Success)
	assert.Equal(t, "Onion", data.Crop)
	assert.Equal(t, models.GraphQuery{State: "Maharashtra", Days: 30}, data.Query)
	require.Len(t, data.Data, 6)
	assert.Equal(t, "Kaggle", data.Data[0].Source)
	assert.Equal(t, 100.0, data.Data[0].Price)
	assert.Equal(t, 6, data.Stats.TotalRecords)
	assert.Equal(t, 100.0, data.Stats.MinPrice)
	assert.Equal(t, 150.0, data.Stats.MaxPrice)

	// Five-period moving average over six points leaves two overlay values.
	require.Len(t, data.SMA, 2)
	assert.Equal(t, 120.0, data.SMA[0])
	assert.Equal(t, 130.0, data.SMA[1])

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetGraphDataEmptyStoreFallsBackToSynthetic(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()
	mockPool.ExpectQuery("ORDER BY date ASC").
		WillReturnRows(pgxmock.NewRows([]string{"date", "modal_price", "min_price", "max_price"}))

	svc := newGraphService(t, mockPool, nil)
	data, err := svc.GetGraphData(context.Background(), "Quinoa", "", "", 10)
	require.NoError(t, err)

	assert.Len(t, data.Data, 10)
	assert.Equal(t, "Demo", data.Data[0].Source)
}

func TestGetGraphDataShortSeriesHasNoOverlay(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()
	mockPool.ExpectQuery("ORDER BY date ASC").
		WillReturnRows(graphRows(100, 110, 120))

	svc := newGraphService(t, mockPool, nil)
	data, err := svc.GetGraphData(context.Background(), "Onion", "", "", 30)
	require.NoError(t, err)
	assert.Nil(t, data.SMA)
}

func TestGetGraphDataCachesResponse(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := database.NewRedisClientFromExisting(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()
	// A single expected query: the second call must hit the cache.
	mockPool.ExpectQuery("ORDER BY date ASC").
		WillReturnRows(graphRows(100, 110, 120, 130, 140))

	svc := newGraphService(t, mockPool, redisClient)
	ctx := context.Background()

	first, err := svc.GetGraphData(ctx, "Onion", "", "", 30)
	require.NoError(t, err)
	second, err := svc.GetGraphData(ctx, "Onion", "", "", 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
