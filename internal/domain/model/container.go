package model

// ContainerType identifies the kind of packaging unit.
type ContainerType string

const (
	ContainerTypeFoam     ContainerType = "foam"
	ContainerTypeBlackBag ContainerType = "black_bag"
	ContainerTypeBox      ContainerType = "box"
	ContainerTypeCooler   ContainerType = "cooler"
)

// ContainerSize identifies the size class of a packaging unit.
type ContainerSize string

const (
	ContainerSizeSmall      ContainerSize = "small"
	ContainerSizeMedium     ContainerSize = "medium"
	ContainerSizeLarge      ContainerSize = "large"
	ContainerSizeExtraLarge ContainerSize = "xl"
)

// ContainerSpec describes one kind of packaging unit in the catalog.
// Specs are static and read-only at runtime.
type ContainerSpec struct {
	ID          string        `json:"id"`
	Type        ContainerType `json:"type"`
	Size        ContainerSize `json:"size"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	// Capacity is how much weight (kg) a single unit holds. Zero means
	// the spec does not participate in weight-based suggestions.
	Capacity    float64 `json:"capacity,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ContainerSelection is a spec paired with a chosen quantity.
// TotalPrice is derived (spec price x quantity). DeliveryPrice is an
// optional per-unit surcharge applied only when delivery is enabled;
// zero means no surcharge.
type ContainerSelection struct {
	Spec          ContainerSpec `json:"spec"`
	Quantity      int           `json:"quantity"`
	TotalPrice    float64       `json:"totalPrice"`
	DeliveryPrice float64       `json:"deliveryPrice,omitempty"`
}

// NewContainerSelection builds a selection with its derived total price.
func NewContainerSelection(spec ContainerSpec, quantity int) ContainerSelection {
	return ContainerSelection{
		Spec:       spec,
		Quantity:   quantity,
		TotalPrice: spec.Price * float64(quantity),
	}
}

// ContainerSummary aggregates a set of selections.
type ContainerSummary struct {
	Selections         []ContainerSelection `json:"selections"`
	TotalQuantity      int                  `json:"totalQuantity"`
	TotalPrice         float64              `json:"totalPrice"`
	TotalDeliveryPrice float64              `json:"totalDeliveryPrice"`
}

// SummarizeContainers computes the aggregate totals over selections.
func SummarizeContainers(selections []ContainerSelection) ContainerSummary {
	summary := ContainerSummary{Selections: selections}
	for _, sel := range selections {
		summary.TotalQuantity += sel.Quantity
		summary.TotalPrice += sel.TotalPrice
		if sel.DeliveryPrice > 0 {
			summary.TotalDeliveryPrice += sel.DeliveryPrice * float64(sel.Quantity)
		}
	}
	return summary
}

// StoredSelection is the persisted shape of one selection. Delivery
// surcharges and derived totals are recomputed from the catalog on load
// and are deliberately not stored.
type StoredSelection struct {
	SpecID   string `json:"specId" bson:"specId"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Spec ids referenced by the legacy boolean packaging migration and the
// weight-suggestion fallback.
const (
	SpecFoamSmall      = "foam_small"
	SpecFoamMedium     = "foam_medium"
	SpecFoamLarge      = "foam_large"
	SpecBlackBagSmall  = "black_bag_small"
	SpecBlackBagMedium = "black_bag_medium"
	SpecBlackBagLarge  = "black_bag_large"
	SpecBoxMedium      = "box_medium"
	SpecBoxLarge       = "box_large"
	SpecCoolerMedium   = "cooler_medium"
	SpecCoolerLarge    = "cooler_large"
)

// ContainerCatalog is a read-only mapping from spec id to spec.
type ContainerCatalog map[string]ContainerSpec

// DefaultContainerCatalog returns the built-in packaging catalog.
func DefaultContainerCatalog() ContainerCatalog {
	return ContainerCatalog{
		SpecFoamSmall: {
			ID: SpecFoamSmall, Type: ContainerTypeFoam, Size: ContainerSizeSmall,
			Name: "โฟมเล็ก", Price: 60, Capacity: 5,
			Description: "โฟมขนาดเล็ก สำหรับสินค้าไม่เกิน 5 กก",
		},
		SpecFoamMedium: {
			ID: SpecFoamMedium, Type: ContainerTypeFoam, Size: ContainerSizeMedium,
			Name: "โฟมกลาง", Price: 80, Capacity: 10,
			Description: "โฟมขนาดกลาง สำหรับสินค้า 5-10 กก",
		},
		SpecFoamLarge: {
			ID: SpecFoamLarge, Type: ContainerTypeFoam, Size: ContainerSizeLarge,
			Name: "โฟมใหญ่", Price: 100, Capacity: 15,
			Description: "โฟมขนาดใหญ่ สำหรับสินค้า 10-15 กก",
		},
		SpecBlackBagSmall: {
			ID: SpecBlackBagSmall, Type: ContainerTypeBlackBag, Size: ContainerSizeSmall,
			Name: "ถุงดำเล็ก", Price: 5, Capacity: 3,
			Description: "ถุงดำขนาดเล็ก สำหรับสินค้าไม่เกิน 3 กก",
		},
		SpecBlackBagMedium: {
			ID: SpecBlackBagMedium, Type: ContainerTypeBlackBag, Size: ContainerSizeMedium,
			Name: "ถุงดำกลาง", Price: 10, Capacity: 7,
			Description: "ถุงดำขนาดกลาง สำหรับสินค้า 3-7 กก",
		},
		SpecBlackBagLarge: {
			ID: SpecBlackBagLarge, Type: ContainerTypeBlackBag, Size: ContainerSizeLarge,
			Name: "ถุงดำใหญ่", Price: 15, Capacity: 12,
			Description: "ถุงดำขนาดใหญ่ สำหรับสินค้า 7-12 กก",
		},
		SpecBoxMedium: {
			ID: SpecBoxMedium, Type: ContainerTypeBox, Size: ContainerSizeMedium,
			Name: "กล่องกลาง", Price: 25, Capacity: 8,
			Description: "กล่องกระดาษแข็งขนาดกลาง",
		},
		SpecBoxLarge: {
			ID: SpecBoxLarge, Type: ContainerTypeBox, Size: ContainerSizeLarge,
			Name: "กล่องใหญ่", Price: 35, Capacity: 15,
			Description: "กล่องกระดาษแข็งขนาดใหญ่",
		},
		SpecCoolerMedium: {
			ID: SpecCoolerMedium, Type: ContainerTypeCooler, Size: ContainerSizeMedium,
			Name: "ถุงเก็บความเย็นกลาง", Price: 45, Capacity: 6,
			Description: "ถุงเก็บความเย็นขนาดกลาง",
		},
		SpecCoolerLarge: {
			ID: SpecCoolerLarge, Type: ContainerTypeCooler, Size: ContainerSizeLarge,
			Name: "ถุงเก็บความเย็นใหญ่", Price: 65, Capacity: 12,
			Description: "ถุงเก็บความเย็นขนาดใหญ่",
		},
	}
}

// Spec returns the spec for the given id.
func (c ContainerCatalog) Spec(id string) (ContainerSpec, bool) {
	spec, ok := c[id]
	return spec, ok
}

// SpecsByType returns all specs of the given container type.
func (c ContainerCatalog) SpecsByType(t ContainerType) []ContainerSpec {
	var specs []ContainerSpec
	for _, spec := range c {
		if spec.Type == t {
			specs = append(specs, spec)
		}
	}
	return specs
}

// LegacySpecID maps the old boolean packaging flag onto a spec id:
// false selected foam, true selected a black bag.
func LegacySpecID(packageType bool) string {
	if packageType {
		return SpecBlackBagMedium
	}
	return SpecFoamMedium
}
