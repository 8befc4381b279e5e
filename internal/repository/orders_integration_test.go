//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nattawat-k/storefront-service/internal/circuitbreaker"
	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

func testOrder(summary string, total float64) model.Order {
	return model.Order{
		OrderDetails: []model.OrderLine{
			{Label: "ปลาทู", Price: 100, Kg: 1, Unit: "เข่ง", Count: 2},
		},
		Containers: map[string]model.StoredSelection{
			"foam_medium": {SpecID: "foam_medium", Quantity: 2},
		},
		Summary:   summary,
		TotalCost: total,
		UserID:    "test-user",
	}
}

func TestOrdersRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewOrdersRepository(db)

	t.Run("create sets id and flags", func(t *testing.T) {
		created, err := repo.Create(ctx, testOrder("รวม 360 บาท\n\n", 360))
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.ID.IsZero())
		assert.True(t, created.IsEnable)
		assert.False(t, created.IsPaid)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("get by id round-trips the document", func(t *testing.T) {
		created, err := repo.Create(ctx, testOrder("รวม 200 บาท\n\n", 200))
		require.NoError(t, err)

		fetched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "รวม 200 บาท\n\n", fetched.Summary)
		assert.Equal(t, 200.0, fetched.TotalCost)
		assert.Equal(t, 2, fetched.Containers["foam_medium"].Quantity)
		require.Len(t, fetched.OrderDetails, 1)
		assert.Equal(t, "ปลาทู", fetched.OrderDetails[0].Label)
	})

	t.Run("get by unknown id returns nil", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		first, err := repo.Create(ctx, testOrder("first", 100))
		require.NoError(t, err)
		second, err := repo.Create(ctx, testOrder("second", 200))
		require.NoError(t, err)

		orders, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(orders), 2)

		var firstIdx, secondIdx int = -1, -1
		for i, o := range orders {
			if o.ID == first.ID {
				firstIdx = i
			}
			if o.ID == second.ID {
				secondIdx = i
			}
		}
		require.NotEqual(t, -1, firstIdx)
		require.NotEqual(t, -1, secondIdx)
		assert.Less(t, secondIdx, firstIdx)
	})

	t.Run("list honors the limit", func(t *testing.T) {
		orders, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("set paid toggles the flag", func(t *testing.T) {
		created, err := repo.Create(ctx, testOrder("paid test", 100))
		require.NoError(t, err)

		updated, err := repo.SetPaid(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.IsPaid)

		updated, err = repo.SetPaid(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.IsPaid)
	})
}

func TestOrdersRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewOrdersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewOrdersRepositoryWithCircuitBreaker(repo, cb)

	t.Run("allows successful operations", func(t *testing.T) {
		created, err := wrapped.Create(ctx, testOrder("cb test", 100))
		require.NoError(t, err)
		require.NotNil(t, created)

		fetched, err := wrapped.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, fetched)

		orders, err := wrapped.List(ctx, 10)
		require.NoError(t, err)
		assert.NotEmpty(t, orders)
	})

	t.Run("records successes in stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})
}
