package notification

import (
	"fmt"
	"html"
	"strings"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/pkg/callback"
	"massfit-bot/internal/usecase/queries"
	"massfit-bot/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const separator = "━━━━━━━━━━━━━━━"

func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ItemLines renders "• name\n  💰 $price x qty = $subtotal" blocks.
func ItemLines(items []*queries.OrderItemView) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "• %s\n  💰 %s x %d = %s\n\n",
			html.EscapeString(it.ProductName), Money(it.ProductPrice), it.Quantity, Money(it.Subtotal))
	}
	return sb.String()
}

// StaffAnnouncement is used both for the initial post and every later edit,
// so the staff message always reflects the current status.
func StaffAnnouncement(v *queries.OrderView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🆕 <b>New Order #%d</b>\n\n", v.ID)
	fmt.Fprintf(&sb, "👤 Customer: %s\n", html.EscapeString(customerName(v)))
	fmt.Fprintf(&sb, "📱 Phone: %s\n", html.EscapeString(valueOr(v.CustomerPhone, "Not provided")))
	fmt.Fprintf(&sb, "🆔 User ID: %d\n", v.UserID)

	switch order.FulfillmentType(v.FulfillmentType) {
	case order.FulfillmentPickup:
		fmt.Fprintf(&sb, "🏢 Pickup Branch: <b>%s</b>\n", html.EscapeString(valueOr(v.BranchName, "Unknown")))
		fmt.Fprintf(&sb, "📍 Branch Location: %s\n\n", html.EscapeString(valueOr(v.BranchLocation, "-")))
	default:
		sb.WriteString("🚚 Delivery Type: <b>Delivery</b>\n\n")
	}

	sb.WriteString("📦 <b>Order Items:</b>\n")
	sb.WriteString(ItemLines(v.Items))
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "💵 <b>Total: %s</b>\n", Money(v.Total))
	fmt.Fprintf(&sb, "📊 Status: <b>%s</b>", strings.ToUpper(v.Status))
	return sb.String()
}

func StaffControls(orderID int64) shared.Keyboard {
	return shared.Keyboard{{
		{Text: "❌ Cancel", Data: callback.OrderStatus(orderID, order.StatusCancelled.String())},
		{Text: "✅ Delivered", Data: callback.OrderStatus(orderID, order.StatusDelivered.String())},
	}}
}

func CustomerStatusUpdate(orderID int64, status string) string {
	emoji := "✅"
	if status == order.StatusCancelled.String() {
		emoji = "❌"
	}
	return fmt.Sprintf("%s <b>Order #%d Status Update</b>\n\nYour order status has been updated to: <b>%s</b>",
		emoji, orderID, strings.ToUpper(status))
}

func customerName(v *queries.OrderView) string {
	if strings.TrimSpace(v.CustomerName) != "" {
		return v.CustomerName
	}
	if v.CustomerUsername != nil && *v.CustomerUsername != "" {
		return "@" + *v.CustomerUsername
	}
	return "Customer"
}

func valueOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}
