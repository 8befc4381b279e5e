package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// TestNewContainerManager tests the constructor and options.
func TestNewContainerManager(t *testing.T) {
	tests := []struct {
		name     string
		options  []ContainerOption
		validate func(*testing.T, *ContainerManager)
	}{
		{
			name:    "uses default catalog and fill ratio when no options",
			options: nil,
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Equal(t, defaultSuggestFillRatio, m.suggestFillRatio)
				assert.Len(t, m.catalog, 10)
				assert.True(t, m.IsEmpty())
			},
		},
		{
			name:    "overrides fill ratio within range",
			options: []ContainerOption{WithSuggestFillRatio(0.5)},
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Equal(t, 0.5, m.suggestFillRatio)
			},
		},
		{
			name:    "ignores fill ratio outside range",
			options: []ContainerOption{WithSuggestFillRatio(1.5)},
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Equal(t, defaultSuggestFillRatio, m.suggestFillRatio)
			},
		},
		{
			name:    "ignores zero fill ratio",
			options: []ContainerOption{WithSuggestFillRatio(0)},
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Equal(t, defaultSuggestFillRatio, m.suggestFillRatio)
			},
		},
		{
			name: "replaces catalog",
			options: []ContainerOption{WithCatalog(model.ContainerCatalog{
				"crate": {ID: "crate", Name: "ลัง", Price: 20},
			})},
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Len(t, m.catalog, 1)
			},
		},
		{
			name:    "keeps default catalog when replacement is empty",
			options: []ContainerOption{WithCatalog(nil)},
			validate: func(t *testing.T, m *ContainerManager) {
				assert.Len(t, m.catalog, 10)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewContainerManager(tt.options...)
			tt.validate(t, m)
		})
	}
}

// TestContainerManager_AddContainer tests adding and merging selections.
func TestContainerManager_AddContainer(t *testing.T) {
	t.Run("adds a new selection with derived total", func(t *testing.T) {
		m := NewContainerManager()

		err := m.AddContainer(model.SpecFoamMedium, 2)

		require.NoError(t, err)
		sel, ok := m.Container(model.SpecFoamMedium)
		require.True(t, ok)
		assert.Equal(t, 2, sel.Quantity)
		assert.Equal(t, 160.0, sel.TotalPrice)
	})

	t.Run("merges quantity for an existing spec", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))

		err := m.AddContainer(model.SpecFoamMedium, 3)

		require.NoError(t, err)
		sel, _ := m.Container(model.SpecFoamMedium)
		assert.Equal(t, 5, sel.Quantity)
		assert.Equal(t, 400.0, sel.TotalPrice)
		assert.Len(t, m.Containers(), 1)
	})

	t.Run("rejects unknown spec id", func(t *testing.T) {
		m := NewContainerManager()

		err := m.AddContainer("wooden_barrel", 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "wooden_barrel")
		assert.True(t, m.IsEmpty())
	})
}

// TestContainerManager_UpdateQuantity tests quantity updates.
func TestContainerManager_UpdateQuantity(t *testing.T) {
	t.Run("updates quantity and recomputes total", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecBoxMedium, 1))

		m.UpdateQuantity(model.SpecBoxMedium, 4)

		sel, _ := m.Container(model.SpecBoxMedium)
		assert.Equal(t, 4, sel.Quantity)
		assert.Equal(t, 100.0, sel.TotalPrice)
	})

	t.Run("zero quantity removes the selection", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecBoxMedium, 2))

		m.UpdateQuantity(model.SpecBoxMedium, 0)

		assert.True(t, m.IsEmpty())
	})

	t.Run("absent spec is a no-op, not an auto-create", func(t *testing.T) {
		m := NewContainerManager()

		m.UpdateQuantity(model.SpecBoxMedium, 3)

		assert.True(t, m.IsEmpty())
	})
}

// TestContainerManager_UpdateDeliveryPrice tests delivery surcharges.
func TestContainerManager_UpdateDeliveryPrice(t *testing.T) {
	t.Run("sets and clears the surcharge", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamLarge, 2))

		m.UpdateDeliveryPrice(model.SpecFoamLarge, 10)
		sel, _ := m.Container(model.SpecFoamLarge)
		assert.Equal(t, 10.0, sel.DeliveryPrice)

		m.UpdateDeliveryPrice(model.SpecFoamLarge, -1)
		sel, _ = m.Container(model.SpecFoamLarge)
		assert.Equal(t, 0.0, sel.DeliveryPrice)
	})

	t.Run("absent spec is a no-op", func(t *testing.T) {
		m := NewContainerManager()

		m.UpdateDeliveryPrice(model.SpecFoamLarge, 10)

		assert.True(t, m.IsEmpty())
	})
}

// TestContainerManager_RemoveContainer tests removal.
func TestContainerManager_RemoveContainer(t *testing.T) {
	m := NewContainerManager()
	require.NoError(t, m.AddContainer(model.SpecFoamSmall, 1))
	require.NoError(t, m.AddContainer(model.SpecBoxLarge, 1))

	m.RemoveContainer(model.SpecFoamSmall)

	assert.Len(t, m.Containers(), 1)
	_, ok := m.Container(model.SpecFoamSmall)
	assert.False(t, ok)

	// Removing an absent spec is not an error
	m.RemoveContainer(model.SpecFoamSmall)
	assert.Len(t, m.Containers(), 1)
}

// TestContainerManager_InsertionOrder verifies selections keep the order
// they were added in.
func TestContainerManager_InsertionOrder(t *testing.T) {
	m := NewContainerManager()
	require.NoError(t, m.AddContainer(model.SpecCoolerLarge, 1))
	require.NoError(t, m.AddContainer(model.SpecBlackBagSmall, 2))
	require.NoError(t, m.AddContainer(model.SpecFoamMedium, 3))

	// Merging does not move an existing selection
	require.NoError(t, m.AddContainer(model.SpecBlackBagSmall, 1))

	ids := make([]string, 0, 3)
	for _, sel := range m.Containers() {
		ids = append(ids, sel.Spec.ID)
	}
	assert.Equal(t, []string{model.SpecCoolerLarge, model.SpecBlackBagSmall, model.SpecFoamMedium}, ids)
}

// TestContainerManager_Summary tests aggregate totals.
func TestContainerManager_Summary(t *testing.T) {
	m := NewContainerManager()
	require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))
	require.NoError(t, m.AddContainer(model.SpecBlackBagSmall, 3))
	m.UpdateDeliveryPrice(model.SpecFoamMedium, 10)

	summary := m.Summary()

	assert.Equal(t, 5, summary.TotalQuantity)
	assert.Equal(t, 175.0, summary.TotalPrice)
	assert.Equal(t, 20.0, summary.TotalDeliveryPrice)
	assert.Equal(t, 5, m.TotalQuantity())
	assert.Equal(t, 175.0, m.TotalPrice())
	assert.Equal(t, 20.0, m.TotalDeliveryPrice())
}

// TestContainerManager_MigrateLegacySelection tests the one-way legacy
// boolean migration.
func TestContainerManager_MigrateLegacySelection(t *testing.T) {
	tests := []struct {
		name         string
		packageType  bool
		count        int
		expectedSpec string
		expectEmpty  bool
	}{
		{
			name:         "false maps to medium foam box",
			packageType:  false,
			count:        3,
			expectedSpec: model.SpecFoamMedium,
		},
		{
			name:         "true maps to medium black bag",
			packageType:  true,
			count:        2,
			expectedSpec: model.SpecBlackBagMedium,
		},
		{
			name:        "zero count yields empty allocation",
			packageType: false,
			count:       0,
			expectEmpty: true,
		},
		{
			name:        "negative count yields empty allocation",
			packageType: true,
			count:       -1,
			expectEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewContainerManager()
			// Pre-existing selections must not survive the migration
			require.NoError(t, m.AddContainer(model.SpecCoolerLarge, 5))

			m.MigrateLegacySelection(tt.packageType, tt.count)

			if tt.expectEmpty {
				assert.True(t, m.IsEmpty())
				return
			}
			selections := m.Containers()
			require.Len(t, selections, 1)
			assert.Equal(t, tt.expectedSpec, selections[0].Spec.ID)
			assert.Equal(t, tt.count, selections[0].Quantity)
		})
	}
}

// TestContainerManager_SerializeDeserialize tests the persistence round trip.
func TestContainerManager_SerializeDeserialize(t *testing.T) {
	t.Run("round trip preserves specs and quantities", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))
		require.NoError(t, m.AddContainer(model.SpecBlackBagLarge, 1))
		m.UpdateDeliveryPrice(model.SpecFoamMedium, 10)

		data := m.Serialize()
		require.Len(t, data, 2)
		assert.Equal(t, model.StoredSelection{SpecID: model.SpecFoamMedium, Quantity: 2}, data[model.SpecFoamMedium])

		restored := NewContainerManager()
		restored.Deserialize(data)

		assert.Equal(t, 3, restored.TotalQuantity())
		sel, ok := restored.Container(model.SpecFoamMedium)
		require.True(t, ok)
		assert.Equal(t, 2, sel.Quantity)
		assert.Equal(t, 160.0, sel.TotalPrice)
		// Surcharges are not persisted
		assert.Equal(t, 0.0, sel.DeliveryPrice)
	})

	t.Run("deserialize replaces current state", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecCoolerMedium, 4))

		m.Deserialize(map[string]model.StoredSelection{
			model.SpecFoamSmall: {SpecID: model.SpecFoamSmall, Quantity: 1},
		})

		assert.Len(t, m.Containers(), 1)
		_, ok := m.Container(model.SpecCoolerMedium)
		assert.False(t, ok)
	})

	t.Run("deserialize skips unknown specs and bad quantities", func(t *testing.T) {
		m := NewContainerManager()

		m.Deserialize(map[string]model.StoredSelection{
			"retired_spec":      {SpecID: "retired_spec", Quantity: 2},
			model.SpecFoamSmall: {SpecID: model.SpecFoamSmall, Quantity: 0},
			model.SpecBoxLarge:  {SpecID: model.SpecBoxLarge, Quantity: -3},
			model.SpecFoamLarge: {SpecID: model.SpecFoamLarge, Quantity: 1},
		})

		selections := m.Containers()
		require.Len(t, selections, 1)
		assert.Equal(t, model.SpecFoamLarge, selections[0].Spec.ID)
	})

	t.Run("empty manager serializes to empty map", func(t *testing.T) {
		m := NewContainerManager()
		assert.Empty(t, m.Serialize())
	})
}

// TestContainerManager_SummaryText tests the packaging summary block.
func TestContainerManager_SummaryText(t *testing.T) {
	t.Run("empty allocation renders nothing", func(t *testing.T) {
		m := NewContainerManager()
		assert.Equal(t, "", m.SummaryText(true))
		assert.Equal(t, "", m.SummaryText(false))
	})

	t.Run("detailed line without surcharge", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))

		assert.Equal(t, "โฟมกลาง 80 x 2 = 160\n\n", m.SummaryText(true))
	})

	t.Run("detailed line with surcharge shows the split", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))
		m.UpdateDeliveryPrice(model.SpecFoamMedium, 10)

		assert.Equal(t, "โฟมกลาง (80 + 10) x 2 = 180\n\n", m.SummaryText(true))
	})

	t.Run("compact form shows the total unit count", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))
		require.NoError(t, m.AddContainer(model.SpecBlackBagSmall, 1))

		assert.Equal(t, "ค่าบรรจุภัณฑ์ 3 ใบ\n", m.SummaryText(false))
	})
}

// TestContainerManager_SuggestForWeight tests the greedy weight heuristic.
func TestContainerManager_SuggestForWeight(t *testing.T) {
	type suggested struct {
		specID   string
		quantity int
	}

	tests := []struct {
		name     string
		options  []ContainerOption
		weight   float64
		expected []suggested
	}{
		{
			name:     "zero weight yields no suggestion",
			weight:   0,
			expected: nil,
		},
		{
			name:     "negative weight yields no suggestion",
			weight:   -4,
			expected: nil,
		},
		{
			name:   "large weight takes the biggest cheapest size",
			weight: 23.5,
			expected: []suggested{
				{model.SpecBoxLarge, 2},
			},
		},
		{
			name:   "weight below the largest cutoff falls through to the next size",
			weight: 10,
			expected: []suggested{
				{model.SpecBlackBagLarge, 1},
			},
		},
		{
			name:   "exact fit on the smallest size leaves no remainder",
			weight: 3,
			expected: []suggested{
				{model.SpecBlackBagSmall, 1},
			},
		},
		{
			name:   "tiny weight falls back to one medium foam box",
			weight: 2,
			expected: []suggested{
				{model.SpecFoamMedium, 1},
			},
		},
		{
			name:    "full fill ratio requires complete utilization",
			options: []ContainerOption{WithSuggestFillRatio(1.0)},
			weight:  10,
			expected: []suggested{
				{model.SpecFoamMedium, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewContainerManager(tt.options...)

			suggestions := m.SuggestForWeight(tt.weight)

			got := make([]suggested, 0, len(suggestions))
			for _, sel := range suggestions {
				got = append(got, suggested{sel.Spec.ID, sel.Quantity})
			}
			if tt.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.expected, got)
			}
		})
	}

	t.Run("suggesting does not touch manager state", func(t *testing.T) {
		m := NewContainerManager()
		require.NoError(t, m.AddContainer(model.SpecCoolerMedium, 1))

		_ = m.SuggestForWeight(42)

		assert.Len(t, m.Containers(), 1)
		assert.Equal(t, 1, m.TotalQuantity())
	})

	t.Run("suggested selections carry derived totals", func(t *testing.T) {
		m := NewContainerManager()

		suggestions := m.SuggestForWeight(23.5)

		require.Len(t, suggestions, 1)
		assert.Equal(t, 70.0, suggestions[0].TotalPrice)
	})
}

// TestContainerManager_Clear tests resetting the allocation.
func TestContainerManager_Clear(t *testing.T) {
	m := NewContainerManager()
	require.NoError(t, m.AddContainer(model.SpecFoamMedium, 2))

	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Empty(t, m.Containers())
	assert.Equal(t, 0, m.TotalQuantity())
}
