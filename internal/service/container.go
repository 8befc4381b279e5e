package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

const (
	// defaultSuggestFillRatio is the minimum share of a container's
	// capacity the remaining weight must reach before that container
	// size is used by SuggestForWeight.
	defaultSuggestFillRatio = 0.7
)

// ContainerManager owns the packaging selections of one order session.
// It is not safe for concurrent use; each session gets its own manager.
type ContainerManager struct {
	catalog          model.ContainerCatalog
	order            []string
	selections       map[string]*model.ContainerSelection
	suggestFillRatio float64
}

// ContainerOption configures a ContainerManager.
type ContainerOption func(*ContainerManager)

// WithCatalog replaces the built-in packaging catalog.
func WithCatalog(catalog model.ContainerCatalog) ContainerOption {
	return func(m *ContainerManager) {
		if len(catalog) > 0 {
			m.catalog = catalog
		}
	}
}

// WithSuggestFillRatio overrides the capacity fill cutoff used by
// SuggestForWeight. Values outside (0, 1] keep the default.
func WithSuggestFillRatio(ratio float64) ContainerOption {
	return func(m *ContainerManager) {
		if ratio > 0 && ratio <= 1 {
			m.suggestFillRatio = ratio
		}
	}
}

// NewContainerManager creates an empty manager over the default catalog.
func NewContainerManager(opts ...ContainerOption) *ContainerManager {
	m := &ContainerManager{
		catalog:          model.DefaultContainerCatalog(),
		selections:       make(map[string]*model.ContainerSelection),
		suggestFillRatio: defaultSuggestFillRatio,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddContainer adds quantity units of the given spec, merging with an
// existing selection for the same spec. An unknown spec id is a
// programming or catalog-sync bug and fails loudly.
func (m *ContainerManager) AddContainer(specID string, quantity int) error {
	spec, ok := m.catalog.Spec(specID)
	if !ok {
		return fmt.Errorf("container spec not found: %s", specID)
	}

	if existing, ok := m.selections[specID]; ok {
		m.UpdateQuantity(specID, existing.Quantity+quantity)
		return nil
	}

	sel := model.NewContainerSelection(spec, quantity)
	m.order = append(m.order, specID)
	m.selections[specID] = &sel
	return nil
}

// RemoveContainer deletes the selection for the given spec. Removing an
// absent spec is not an error.
func (m *ContainerManager) RemoveContainer(specID string) {
	if _, ok := m.selections[specID]; !ok {
		return
	}
	delete(m.selections, specID)
	for i, id := range m.order {
		if id == specID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity replaces the quantity of an existing selection and
// recomputes its total price. A quantity of zero or less removes the
// selection; an absent spec id is a no-op (it does not auto-create).
func (m *ContainerManager) UpdateQuantity(specID string, quantity int) {
	if quantity <= 0 {
		m.RemoveContainer(specID)
		return
	}
	sel, ok := m.selections[specID]
	if !ok {
		return
	}
	sel.Quantity = quantity
	sel.TotalPrice = sel.Spec.Price * float64(quantity)
}

// UpdateDeliveryPrice sets the per-unit delivery surcharge on an
// existing selection. A value of zero or less clears the surcharge; an
// absent spec id is a no-op.
func (m *ContainerManager) UpdateDeliveryPrice(specID string, deliveryPrice float64) {
	sel, ok := m.selections[specID]
	if !ok {
		return
	}
	if deliveryPrice > 0 {
		sel.DeliveryPrice = deliveryPrice
	} else {
		sel.DeliveryPrice = 0
	}
}

// Container returns the selection for the given spec id.
func (m *ContainerManager) Container(specID string) (model.ContainerSelection, bool) {
	sel, ok := m.selections[specID]
	if !ok {
		return model.ContainerSelection{}, false
	}
	return *sel, true
}

// Containers returns all selections in insertion order.
func (m *ContainerManager) Containers() []model.ContainerSelection {
	selections := make([]model.ContainerSelection, 0, len(m.order))
	for _, id := range m.order {
		selections = append(selections, *m.selections[id])
	}
	return selections
}

// Summary aggregates the current selections.
func (m *ContainerManager) Summary() model.ContainerSummary {
	return model.SummarizeContainers(m.Containers())
}

// Clear empties the allocation.
func (m *ContainerManager) Clear() {
	m.order = nil
	m.selections = make(map[string]*model.ContainerSelection)
}

// IsEmpty reports whether no containers are selected.
func (m *ContainerManager) IsEmpty() bool {
	return len(m.selections) == 0
}

// TotalQuantity returns the summed quantity of all selections.
func (m *ContainerManager) TotalQuantity() int {
	return m.Summary().TotalQuantity
}

// TotalPrice returns the summed base price of all selections.
func (m *ContainerManager) TotalPrice() float64 {
	return m.Summary().TotalPrice
}

// TotalDeliveryPrice returns the summed delivery surcharge of all
// selections that carry one.
func (m *ContainerManager) TotalDeliveryPrice() float64 {
	return m.Summary().TotalDeliveryPrice
}

// MigrateLegacySelection translates the old boolean-packaging-type plus
// count representation into the multi-spec allocation: the allocation is
// cleared and, when count is positive, exactly one selection is created
// for the mapped spec. The translation is one-way.
func (m *ContainerManager) MigrateLegacySelection(packageType bool, count int) {
	m.Clear()
	if count <= 0 {
		return
	}
	// The legacy spec ids are fixed catalog entries; adding them cannot
	// fail against the default catalog.
	_ = m.AddContainer(model.LegacySpecID(packageType), count)
}

// Serialize produces the persisted allocation shape: spec id to
// {specId, quantity}. Surcharges and derived totals are recomputed from
// the catalog on load and are not stored.
func (m *ContainerManager) Serialize() map[string]model.StoredSelection {
	serialized := make(map[string]model.StoredSelection, len(m.selections))
	for id, sel := range m.selections {
		serialized[id] = model.StoredSelection{SpecID: id, Quantity: sel.Quantity}
	}
	return serialized
}

// Deserialize clears the allocation and re-adds every stored entry with
// a positive quantity. Unknown spec ids and non-positive quantities are
// skipped silently: stored payloads may predate or postdate the current
// catalog, and tolerance is preferred over failing the whole load.
func (m *ContainerManager) Deserialize(data map[string]model.StoredSelection) {
	m.Clear()
	for specID, stored := range data {
		if stored.Quantity <= 0 {
			continue
		}
		if _, ok := m.catalog.Spec(specID); !ok {
			continue
		}
		_ = m.AddContainer(specID, stored.Quantity)
	}
}

// SummaryText renders the packaging portion of an order summary.
// With details, one block per selection; without, a single Thai count
// line. The caller appends any grand-total line itself. Returns the
// empty string when nothing is selected.
func (m *ContainerManager) SummaryText(includeDetails bool) string {
	if m.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if includeDetails {
		for _, sel := range m.Containers() {
			if sel.DeliveryPrice > 0 {
				total := sel.TotalPrice + sel.DeliveryPrice*float64(sel.Quantity)
				fmt.Fprintf(&b, "%s (%s + %s) x %d = %s\n",
					sel.Spec.Name, formatNumber(sel.Spec.Price),
					formatNumber(sel.DeliveryPrice), sel.Quantity, formatNumber(total))
			} else {
				fmt.Fprintf(&b, "%s %s x %d = %s\n",
					sel.Spec.Name, formatNumber(sel.Spec.Price), sel.Quantity,
					formatNumber(sel.TotalPrice))
			}
			b.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&b, "ค่าบรรจุภัณฑ์ %d ใบ\n", m.Summary().TotalQuantity)
	}
	return b.String()
}

// SuggestForWeight proposes an allocation covering totalWeight kg using
// a greedy heuristic: capacity-bearing specs are tried largest first,
// and a size is used once the remaining weight reaches the fill-ratio
// share of its capacity, taking ceil(remaining/capacity) units. The
// per-size subtraction can overshoot, which is what terminates the
// loop. Whatever weight no size accepted falls back to one medium foam
// box. This is an approximation, not minimal-cost bin packing.
//
// The manager's own state is not touched; adopting a suggestion is
// Clear followed by AddContainer per selection.
func (m *ContainerManager) SuggestForWeight(totalWeight float64) []model.ContainerSelection {
	var suggestions []model.ContainerSelection
	remaining := totalWeight

	specs := make([]model.ContainerSpec, 0, len(m.catalog))
	for _, spec := range m.catalog {
		if spec.Capacity > 0 {
			specs = append(specs, spec)
		}
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Capacity != specs[j].Capacity {
			return specs[i].Capacity > specs[j].Capacity
		}
		// Equal capacity: prefer the cheaper spec.
		if specs[i].Price != specs[j].Price {
			return specs[i].Price < specs[j].Price
		}
		return specs[i].ID < specs[j].ID
	})

	for _, spec := range specs {
		if remaining <= 0 {
			break
		}
		if remaining >= spec.Capacity*m.suggestFillRatio {
			quantity := int(math.Ceil(remaining / spec.Capacity))
			suggestions = append(suggestions, model.NewContainerSelection(spec, quantity))
			remaining -= spec.Capacity * float64(quantity)
		}
	}

	if remaining > 0 {
		if fallback, ok := m.catalog.Spec(model.SpecFoamMedium); ok {
			suggestions = append(suggestions, model.NewContainerSelection(fallback, 1))
		}
	}

	return suggestions
}

// formatNumber renders a price or weight the way the summaries expect:
// no separators, trailing zeros trimmed.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
