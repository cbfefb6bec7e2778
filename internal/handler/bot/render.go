package bot

import (
	"fmt"
	"html"
	"strings"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/pkg/callback"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/notification"
	"massfit-bot/internal/usecase/queries"
	"massfit-bot/internal/usecase/shared"
)

const (
	menuLoseWeight = "🔻 Lose Weight"
	menuGainWeight = "🔺 Gain Weight"
	menuMyOrders   = "📦 My Orders"
	menuSharePhone = "📱 Share Phone Number"
)

const (
	textPhonePrompt = "Assalomu alaykum! Iltimos, telefon raqamingizni yuboring. " +
		"Bu siz bilan bog'lanishimiz uchun kerak."
	textWelcome = "🥗 <b>MassFit - Shaxsiy ovqatlanish yordamchingizga xush kelibsiz!</b>\n\n" +
		"Biz sizga to'g'ri ovqatlanish orqali salomatlik va fitnes maqsadlaringizga erishishda yordam beramiz.\n\n" +
		"Quyidagi bo'limlardan birini tanlang:"
	textEmptyBasket = "🛒 <b>My Basket</b>\n\nYour basket is empty.\nAdd products to your basket to create an order!"
	textFulfillment = "📦 <b>How would you like to receive your order?</b>\n\nChoose delivery method:"
	textDelivery    = "📍 <b>Delivery Address</b>\n\nPlease share your location for delivery.\n" +
		"Use the 📎 attachment button to send your location."
	textNoBranches = "🏢 <b>No Branches Available</b>\n\n" +
		"Sorry, there are currently no branches available for pickup.\nPlease contact support."
	textBranchHeader  = "🏢 <b>Select a Branch for Pickup</b>\n\nChoose a branch to pick up your order:"
	textPickupConfirm = "❓ <b>Confirm Order</b>\n\nDo you confirm your order?"
	textGenericError  = "⚠️ Something went wrong. Please try again later."
	textOrderFailed   = "⚠️ We could not place your order. Your basket is unchanged, please try again."
	textCancelled     = "❌ Checkout cancelled."
	textNothingToStop = "Nothing to cancel."
	textUseMenu       = "Please use the menu below."

	alertEmptyBasket   = "Your basket is empty!"
	alertProductGone   = "Product not found!"
	alertBranchGone    = "This branch is no longer available. Please choose another one."
	alertOrderGone     = "Order not found!"
	alertStepExpired   = "This step is no longer available. Open your basket to start again."
	alertForbidden     = "You are not allowed to do this."
	alertStatusSettled = "This order is already closed."
)

func mainMenu() [][]shared.MenuButton {
	return [][]shared.MenuButton{
		{{Text: menuLoseWeight}, {Text: menuGainWeight}},
		{{Text: menuMyOrders}},
	}
}

func phoneMenu() [][]shared.MenuButton {
	return [][]shared.MenuButton{{{Text: menuSharePhone, RequestContact: true}}}
}

func renderBasket(b *queries.BasketView) (string, shared.Keyboard) {
	if b.IsEmpty() {
		return textEmptyBasket, nil
	}

	var sb strings.Builder
	sb.WriteString("🛒 <b>My Basket</b>\n\n")
	kb := make(shared.Keyboard, 0, len(b.Lines)+1)
	for _, l := range b.Lines {
		fmt.Fprintf(&sb, "• %s\n  💰 %s x %d = %s\n\n",
			html.EscapeString(l.Name), notification.Money(l.UnitPrice), l.Quantity, notification.Money(l.Subtotal))
		kb = append(kb, []shared.Button{
			{Text: "➖", Data: callback.BasketDec(l.ProductID)},
			{Text: fmt.Sprintf("%s: %d", l.Name, l.Quantity), Data: callback.BasketNoop()},
			{Text: "➕", Data: callback.BasketInc(l.ProductID)},
		})
	}
	sb.WriteString("━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&sb, "💵 <b>Total: %s</b>", notification.Money(b.Total))

	kb = append(kb, []shared.Button{{Text: "✅ Confirm Order", Data: callback.CheckoutStart()}})
	return sb.String(), kb
}

func fulfillmentKeyboard() shared.Keyboard {
	return shared.Keyboard{{
		{Text: "🏢 Pick Up", Data: callback.CheckoutPickup()},
		{Text: "🚚 Delivery", Data: callback.CheckoutDelivery()},
	}}
}

func confirmKeyboard() shared.Keyboard {
	return shared.Keyboard{{
		{Text: "✅ Yes", Data: callback.CheckoutYes()},
		{Text: "❌ No", Data: callback.CheckoutNo()},
	}}
}

func renderLocationReceived(lat, lon float64) string {
	return fmt.Sprintf("📍 <b>Location Received</b>\n\nLatitude: %.6f\nLongitude: %.6f\n\n❓ Do you confirm your order?", lat, lon)
}

func renderBranchCard(b *queries.BranchView) (string, shared.Keyboard) {
	desc := "No description"
	if b.Description != nil && *b.Description != "" {
		desc = *b.Description
	}
	text := fmt.Sprintf("🏢 <b>%s</b>\n\n📝 %s\n📍 Location: %s",
		html.EscapeString(b.Name), html.EscapeString(desc), html.EscapeString(b.Location))
	kb := shared.Keyboard{{{Text: "📦 Order from this branch", Data: callback.CheckoutBranch(b.ID)}}}
	return text, kb
}

func renderConfirmation(res *commands.FinalizeResult) string {
	if res.Fulfillment.IsDelivery() {
		return fmt.Sprintf("✅ <b>Order Confirmed!</b>\n\n"+
			"Your order #%d has been placed successfully.\nTotal: %s\nDelivery Type: Delivery\n\n"+
			"We will deliver to your location soon!", res.OrderID, notification.Money(res.Total))
	}
	branch := "-"
	if res.Branch != nil {
		branch = res.Branch.Name
	}
	return fmt.Sprintf("✅ <b>Order Confirmed!</b>\n\n"+
		"Information about your product has been sent to the branch.\nThey will contact you shortly!\n\n"+
		"📦 Order #%d\n💵 Total: %s\n🏢 Branch: %s", res.OrderID, notification.Money(res.Total), html.EscapeString(branch))
}

func renderCategory(c catalog.Category, products []*queries.ProductView) (string, shared.Keyboard) {
	var sb strings.Builder
	switch c {
	case catalog.CategoryWeightGain:
		sb.WriteString("🔺 <b>Weight Gain Products</b>\n\n" +
			"This category of products helps your body gain healthy weight and build muscle mass.\n\n")
	default:
		sb.WriteString("🔻 <b>Weight Loss Products</b>\n\n" +
			"This category of products helps your body lose excess weight.\n\n")
	}
	if len(products) == 0 {
		sb.WriteString("Currently, there are no products available in this category.")
		return sb.String(), nil
	}
	sb.WriteString("Select a product to view details:")

	kb := make(shared.Keyboard, 0, len(products))
	for _, p := range products {
		kb = append(kb, []shared.Button{{
			Text: fmt.Sprintf("%s - %s", p.Name, notification.Money(p.Price)),
			Data: callback.Product(p.ID),
		}})
	}
	return sb.String(), kb
}

func renderProductCard(p *queries.ProductView) (string, shared.Keyboard) {
	desc := "No description provided"
	if p.Description != nil && *p.Description != "" {
		desc = *p.Description
	}
	text := fmt.Sprintf("📦 <b>%s</b>\n\n💰 Price: %s\n📝 Description: %s\n\nTo order this product, add it to your basket!",
		html.EscapeString(p.Name), notification.Money(p.Price), html.EscapeString(desc))
	kb := shared.Keyboard{
		{{Text: "🛒 Add to Basket", Data: callback.BasketAdd(p.ID)}},
		{{Text: "🔙 Back to Products", Data: callback.Category(p.Category)}},
	}
	return text, kb
}
