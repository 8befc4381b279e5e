package service

import (
	"github.com/shopspring/decimal"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// OrderSession is the explicit state of one order-building session:
// cart, customer, delivery options, output toggles and the container
// allocation. The caller owns its lifecycle: create it when the
// session starts, discard or persist it when the order completes.
// There is no shared ambient state between sessions.
type OrderSession struct {
	Cart       *model.Cart
	Customer   model.CustomerDetails
	Delivery   model.DeliveryDetails
	Options    model.OrderOptions
	Containers *ContainerManager
}

// NewOrderSession returns an empty session.
func NewOrderSession(opts ...ContainerOption) *OrderSession {
	return &OrderSession{
		Cart:       model.NewCart(),
		Containers: NewContainerManager(opts...),
	}
}

// RestoreContainers loads the session's allocation from the delivery
// details. A stored multi-spec allocation is authoritative; the legacy
// packageType/containerCount pair is migrated only when no allocation
// was stored.
func (s *OrderSession) RestoreContainers() {
	if len(s.Delivery.Containers) > 0 {
		s.Containers.Deserialize(s.Delivery.Containers)
		return
	}
	if s.Delivery.ContainerCount > 0 {
		s.Containers.MigrateLegacySelection(s.Delivery.PackageType, s.Delivery.ContainerCount)
	}
}

// Summary renders the session in its selected mode. Withdrawal slips
// carry no cost; the returned total is zero for them.
func (s *OrderSession) Summary() (string, decimal.Decimal) {
	if s.Options.IsWithdrawal {
		return GenerateWithdrawalSummary(s.Cart, s.Customer, s.Delivery, s.Options), decimal.Zero
	}
	return GenerateOrderSummary(s.Cart, s.Customer, s.Delivery, s.Options, s.Containers)
}

// Reset clears the session for the next order.
func (s *OrderSession) Reset() {
	s.Cart.Clear()
	s.Containers.Clear()
	s.Customer = model.CustomerDetails{}
	s.Delivery = model.DeliveryDetails{}
	s.Options = model.OrderOptions{}
}
