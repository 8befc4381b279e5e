package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nattawat-k/storefront-service/internal/domain/model"
)

// GenerateOrderSummary builds the sales-receipt text for one order
// session and returns it together with the computed total cost.
//
// Inputs are assumed already validated; the function never mutates them
// and has no failure path. Containers may be nil; a non-empty
// allocation contributes line items and cost only when delivery is on.
func GenerateOrderSummary(
	cart *model.Cart,
	customer model.CustomerDetails,
	delivery model.DeliveryDetails,
	opts model.OrderOptions,
	containers *ContainerManager,
) (string, decimal.Decimal) {
	var b strings.Builder
	totalCost := decimal.Zero

	if !opts.IsWithoutDetails {
		writeReceiptHeader(&b, customer, delivery)
	}

	for _, item := range cart.Items() {
		count := decimal.NewFromInt(int64(item.Count))
		kg := decimal.NewFromFloat(item.Product.Kg)
		price := decimal.NewFromFloat(item.Product.Price)
		itemCost := price.Mul(kg).Mul(count)
		totalCost = totalCost.Add(itemCost)

		fmt.Fprintf(&b, "%s = %d %s\n", item.Product.Label, item.Count, item.Product.Unit)
		fmt.Fprintf(&b, "%dx%sx%s\n=%s\n",
			item.Count, formatNumber(item.Product.Kg), formatNumber(item.Product.Price),
			FormatMoney(itemCost))
		b.WriteString("\n")
	}

	if delivery.IsDeliver && containers != nil && !containers.IsEmpty() {
		b.WriteString(containers.SummaryText(true))
		summary := containers.Summary()
		totalCost = totalCost.
			Add(decimal.NewFromFloat(summary.TotalPrice)).
			Add(decimal.NewFromFloat(summary.TotalDeliveryPrice))
	}

	fmt.Fprintf(&b, "รวม %s บาท\n\n", FormatMoney(totalCost))

	if !opts.IsWithoutDetails && delivery.IsDeliver && customer.DeliveryNote != "" {
		b.WriteString(customer.DeliveryNote)
		b.WriteString("\n")
	}

	return b.String(), totalCost
}

// GenerateWithdrawalSummary builds the internal stock-withdrawal slip
// for one order session. Withdrawal slips never show prices.
func GenerateWithdrawalSummary(
	cart *model.Cart,
	customer model.CustomerDetails,
	delivery model.DeliveryDetails,
	opts model.OrderOptions,
) string {
	var b strings.Builder

	if !opts.IsWithoutDetails {
		now := time.Now()
		fmt.Fprintf(&b, "%d/%d", now.Day(), int(now.Month()))
		if customer.CarRegistration != "" {
			fmt.Fprintf(&b, " ทะเบียน %s", customer.CarRegistration)
		}
		b.WriteString("\n\n")
	}

	for _, item := range cart.Items() {
		if item.Product.LotNumber != "" {
			b.WriteString(item.Product.LotNumber)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n%d %s\n", item.Product.Label, item.Count, item.Product.Unit)
		b.WriteString("\n")
	}

	return b.String()
}

// writeReceiptHeader emits the date/customer header block of a sales
// receipt: day/month and customer name, the pickup location when the
// order is picked up, the delivery service when it is shipped, and the
// car registration for pickup orders.
func writeReceiptHeader(b *strings.Builder, customer model.CustomerDetails, delivery model.DeliveryDetails) {
	now := time.Now()
	fmt.Fprintf(b, "%d/%d %s", now.Day(), int(now.Month()), customer.Name)
	if !delivery.IsDeliver && delivery.ProductLocation != "" {
		fmt.Fprintf(b, " %s", delivery.ProductLocation)
	}
	b.WriteString("\n")

	if delivery.IsDeliver && customer.DeliveryService != "" {
		fmt.Fprintf(b, "ส่ง %s\n", customer.DeliveryService)
	}
	if !delivery.IsDeliver && customer.CarRegistration != "" {
		fmt.Fprintf(b, "ทะเบียน %s\n", customer.CarRegistration)
	}
	b.WriteString("\n")
}
