package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func cartProduct(label string, price, kg float64) Product {
	return Product{ID: primitive.NewObjectID(), Label: label, Price: price, Kg: kg, Unit: "ถุง"}
}

// TestCart_Add tests adding and merging cart lines.
func TestCart_Add(t *testing.T) {
	t.Run("adds a new line", func(t *testing.T) {
		c := NewCart()
		p := cartProduct("ปลาทู", 100, 1)

		c.Add(p, 2)

		require.Equal(t, 1, c.Len())
		item, ok := c.Item(p.ID.Hex())
		require.True(t, ok)
		assert.Equal(t, 2, item.Count)
	})

	t.Run("merges counts for the same product", func(t *testing.T) {
		c := NewCart()
		p := cartProduct("ปลาทู", 100, 1)

		c.Add(p, 2)
		c.Add(p, 3)

		item, _ := c.Item(p.ID.Hex())
		assert.Equal(t, 5, item.Count)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("ignores non-positive counts", func(t *testing.T) {
		c := NewCart()

		c.Add(cartProduct("ปลาทู", 100, 1), 0)
		c.Add(cartProduct("หมึกกล้วย", 50, 2), -1)

		assert.True(t, c.IsEmpty())
	})
}

// TestCart_SetCount tests count replacement semantics.
func TestCart_SetCount(t *testing.T) {
	c := NewCart()
	p := cartProduct("ปลาทู", 100, 1)
	c.Add(p, 2)

	c.SetCount(p.ID.Hex(), 7)
	item, _ := c.Item(p.ID.Hex())
	assert.Equal(t, 7, item.Count)

	// Unknown ids are a no-op
	c.SetCount(primitive.NewObjectID().Hex(), 3)
	assert.Equal(t, 1, c.Len())

	// Zero removes the line
	c.SetCount(p.ID.Hex(), 0)
	assert.True(t, c.IsEmpty())
}

// TestCart_Remove tests line removal.
func TestCart_Remove(t *testing.T) {
	c := NewCart()
	a := cartProduct("ปลาทู", 100, 1)
	b := cartProduct("หมึกกล้วย", 50, 2)
	c.Add(a, 1)
	c.Add(b, 1)

	c.Remove(a.ID.Hex())

	assert.Equal(t, 1, c.Len())
	_, ok := c.Item(a.ID.Hex())
	assert.False(t, ok)

	c.Remove(a.ID.Hex())
	assert.Equal(t, 1, c.Len())
}

// TestCart_Items verifies insertion-order iteration.
func TestCart_Items(t *testing.T) {
	c := NewCart()
	a := cartProduct("ปลาทู", 100, 1)
	b := cartProduct("หมึกกล้วย", 50, 2)
	d := cartProduct("กุ้งขาว", 250, 0.5)
	c.Add(a, 1)
	c.Add(b, 2)
	c.Add(d, 3)

	// Merging does not move an existing line
	c.Add(b, 1)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "ปลาทู", items[0].Product.Label)
	assert.Equal(t, "หมึกกล้วย", items[1].Product.Label)
	assert.Equal(t, "กุ้งขาว", items[2].Product.Label)
}

// TestCart_TotalWeight tests the weight sum that drives container
// suggestions.
func TestCart_TotalWeight(t *testing.T) {
	c := NewCart()
	c.Add(cartProduct("ปลาทู", 100, 1), 2)
	c.Add(cartProduct("กุ้งขาว", 250, 0.5), 3)

	assert.InDelta(t, 3.5, c.TotalWeight(), 1e-9)

	c.Clear()
	assert.Equal(t, 0.0, c.TotalWeight())
	assert.True(t, c.IsEmpty())
}
