//go:build e2e

package order_test

import (
	"context"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"massfit-bot/internal/handler/dto/request"
	"massfit-bot/internal/handler/dto/response"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/ptr"
	"massfit-bot/tests/common/dbtest"
	"massfit-bot/tests/common/httptest"
	"massfit-bot/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	customerID  int64 = 100200
	staffUserID int64 = 5
	ordersURL         = "/api/orders/%d"
	statusURL         = "/api/orders/%d/status"
)

type OrderSuite struct {
	e2e.SharedSuite
	updateSeq atomic.Int64
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

// -----------------------------------------------------------------------------
// update helpers
// -----------------------------------------------------------------------------

// post is safe to call from several goroutines.
func (s *OrderSuite) post(upd telegram.Update) *nethttptest.ResponseRecorder {
	upd.UpdateID = s.updateSeq.Add(1)
	return httptest.PerformWebhook(s.T(), s.Router, upd, s.Config.Bot.WebhookSecret)
}

func (s *OrderSuite) deliver(upd telegram.Update) {
	w := s.post(upd)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
}

func (s *OrderSuite) callbackUpdate(from, chatID int64, data string) telegram.Update {
	return telegram.Update{CallbackQuery: &telegram.CallbackQuery{
		ID:      fmt.Sprintf("cb-%s-%d", data, from),
		From:    telegram.User{ID: from, FirstName: "Alisher", LastName: "Karimov"},
		Message: &telegram.Message{MessageID: 500, Chat: telegram.Chat{ID: chatID, Type: "private"}},
		Data:    data,
	}}
}

func (s *OrderSuite) press(from, chatID int64, data string) {
	s.deliver(s.callbackUpdate(from, chatID, data))
}

// pressAll sends every callback at once and waits for all of them.
func (s *OrderSuite) pressAll(from, chatID int64, data ...string) {
	codes := make([]int, len(data))
	var wg sync.WaitGroup
	for i, d := range data {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = s.post(s.callbackUpdate(from, chatID, d)).Code
		}()
	}
	wg.Wait()
	for _, code := range codes {
		require.Equal(s.T(), http.StatusOK, code)
	}
}

func (s *OrderSuite) say(from int64, text string) {
	s.deliver(telegram.Update{Message: &telegram.Message{
		MessageID: 400,
		From:      &telegram.User{ID: from, FirstName: "Alisher", LastName: "Karimov"},
		Chat:      telegram.Chat{ID: from, Type: "private"},
		Text:      text,
	}})
}

func (s *OrderSuite) shareLocation(from int64, lat, lon float64) {
	s.deliver(telegram.Update{Message: &telegram.Message{
		MessageID: 401,
		From:      &telegram.User{ID: from, FirstName: "Alisher", LastName: "Karimov"},
		Chat:      telegram.Chat{ID: from, Type: "private"},
		Location:  &telegram.Location{Latitude: lat, Longitude: lon},
	}})
}

func (s *OrderSuite) placePickupOrder(branchID int64) int64 {
	s.press(customerID, customerID, "co:start")
	s.press(customerID, customerID, "co:pickup")
	s.press(customerID, customerID, fmt.Sprintf("co:branch:%d", branchID))
	s.press(customerID, customerID, "co:yes")
	id, _, _, _ := dbtest.LatestOrder(s.T(), s.DB, customerID)
	return id
}

// =============================================================================
// Checkout
// =============================================================================

func (s *OrderSuite) TestPickupCheckout() {
	s.Run("Normal case: two units at branch 3 become one order and empty the basket", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 2)

		s.press(customerID, customerID, "co:start")
		require.Equal(t, "awaiting_fulfillment_choice", dbtest.CheckoutState(t, s.DB, customerID))

		s.press(customerID, customerID, "co:pickup")
		require.Equal(t, "awaiting_branch_selection", dbtest.CheckoutState(t, s.DB, customerID))
		require.Len(t, s.BotAPI.SentTo(customerID), 3, "one card per seeded branch")

		s.press(customerID, customerID, fmt.Sprintf("co:branch:%d", dbtest.BranchChilonzor))
		require.Equal(t, "awaiting_confirmation", dbtest.CheckoutState(t, s.DB, customerID))

		s.press(customerID, customerID, "co:yes")

		id, total, status, fulfillment := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "20.00", total)
		require.Equal(t, "pending", status)
		require.Equal(t, "pickup", fulfillment)
		require.Zero(t, dbtest.CountBasketLines(t, s.DB, customerID))
		require.Empty(t, dbtest.CheckoutState(t, s.DB, customerID))

		staff := s.BotAPI.SentTo(s.Config.Bot.StaffChatID)
		require.Len(t, staff, 1)
		require.Contains(t, staff[0].Text(), fmt.Sprintf("New Order #%d", id))
		require.Contains(t, staff[0].Text(), "Pickup Branch: <b>Chilonzor</b>")
		require.Contains(t, staff[0].Text(), "Total: $20.00")

		var receipt string
		for _, c := range s.BotAPI.Calls("editMessageText") {
			receipt = c.Text()
		}
		require.Contains(t, receipt, "Order Confirmed!")
		require.Contains(t, receipt, fmt.Sprintf("Order #%d", id))
	})

	s.Run("Error case: confirming twice does not create a second order", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 1)

		s.placePickupOrder(dbtest.BranchYunusobod)
		s.press(customerID, customerID, "co:yes")

		require.Equal(t, 1, dbtest.CountOrders(t, s.DB, customerID))
	})

	s.Run("Error case: branch deleted before confirmation returns to branch selection", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductB, 1)

		s.press(customerID, customerID, "co:start")
		s.press(customerID, customerID, "co:pickup")
		s.press(customerID, customerID, fmt.Sprintf("co:branch:%d", dbtest.BranchSergeli))
		dbtest.DeleteBranch(t, s.DB, dbtest.BranchSergeli)
		s.BotAPI.Reset()

		s.press(customerID, customerID, "co:yes")

		require.Zero(t, dbtest.CountOrders(t, s.DB, customerID))
		require.Equal(t, 1, dbtest.CountBasketLines(t, s.DB, customerID))
		require.Equal(t, "awaiting_branch_selection", dbtest.CheckoutState(t, s.DB, customerID))
		require.Len(t, s.BotAPI.SentTo(customerID), 3, "header and the two remaining branches")
	})

	s.Run("Normal case: a product added while the order is written stays in the basket", func() {
		t := s.T()
		ctx := context.Background()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 2)

		s.press(customerID, customerID, "co:start")
		s.press(customerID, customerID, "co:pickup")
		s.press(customerID, customerID, fmt.Sprintf("co:branch:%d", dbtest.BranchChilonzor))

		// Holding the branch row parks the finalizer after it has locked the basket.
		blocker, err := s.DB.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = blocker.Rollback(ctx) }()
		_, err = blocker.Exec(ctx, "SELECT id FROM branches WHERE id = $1 FOR UPDATE", dbtest.BranchChilonzor)
		require.NoError(t, err)

		confirmed := make(chan int, 1)
		go func() {
			confirmed <- s.post(s.callbackUpdate(customerID, customerID, "co:yes")).Code
		}()
		dbtest.WaitForLockWaiters(t, s.DB, 1)

		s.press(customerID, customerID, fmt.Sprintf("bk:add:%d", dbtest.ProductB))
		require.NoError(t, blocker.Rollback(ctx))
		require.Equal(t, http.StatusOK, <-confirmed)

		_, total, _, _ := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "20.00", total)
		require.Zero(t, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductA))
		require.Equal(t, 1, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductB))
	})

	s.Run("Normal case: a later price change does not touch the placed order", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 2)
		id := s.placePickupOrder(dbtest.BranchChilonzor)

		dbtest.SetProductPrice(t, s.DB, dbtest.ProductA, "99.99")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ordersURL, id), nil, s.Config.API.StaffToken)
		var got response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "20.00", got.Total)
		require.Len(t, got.Items, 1)
		require.Equal(t, "10.00", got.Items[0].ProductPrice)
		require.Equal(t, "20.00", got.Items[0].Subtotal)
	})

	s.Run("Error case: empty basket cannot start checkout", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")

		s.press(customerID, customerID, "co:start")

		require.Empty(t, dbtest.CheckoutState(t, s.DB, customerID))
		answers := s.BotAPI.Calls("answerCallbackQuery")
		require.NotEmpty(t, answers)
		require.Equal(t, true, answers[0].Body["show_alert"])
	})
}

func (s *OrderSuite) TestDeliveryCheckout() {
	s.Run("Normal case: location then confirmation creates a delivery order", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductC, 1)

		s.press(customerID, customerID, "co:start")
		s.press(customerID, customerID, "co:delivery")
		s.shareLocation(customerID, 41.311081, 69.240562)
		require.Equal(t, "awaiting_confirmation", dbtest.CheckoutState(t, s.DB, customerID))

		s.press(customerID, customerID, "co:yes")

		_, total, _, fulfillment := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "24.90", total)
		require.Equal(t, "delivery", fulfillment)

		locations := s.BotAPI.Calls("sendLocation")
		require.Len(t, locations, 1)
		require.Equal(t, s.Config.Bot.StaffChatID, locations[0].ChatID())
	})

	s.Run("Error case: free text instead of a location keeps waiting", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 1)

		s.press(customerID, customerID, "co:start")
		s.press(customerID, customerID, "co:delivery")
		s.BotAPI.Reset()

		s.say(customerID, "Chilonzor 9, kv 12")
		s.press(customerID, customerID, "co:yes")

		require.Equal(t, "awaiting_location", dbtest.CheckoutState(t, s.DB, customerID))
		require.Zero(t, dbtest.CountOrders(t, s.DB, customerID))
		sent := s.BotAPI.SentTo(customerID)
		require.NotEmpty(t, sent)
		require.Contains(t, sent[0].Text(), "Delivery Address")
	})

	s.Run("Normal case: cancel clears the session but keeps the basket", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 1)

		s.press(customerID, customerID, "co:start")
		s.say(customerID, "/cancel")

		require.Empty(t, dbtest.CheckoutState(t, s.DB, customerID))
		require.Equal(t, 1, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductA))
	})
}

// =============================================================================
// Basket
// =============================================================================

func (s *OrderSuite) TestBasketEditing() {
	s.Run("Normal case: increment then decrement the last unit removes the line", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")

		s.press(customerID, customerID, fmt.Sprintf("bk:add:%d", dbtest.ProductB))
		s.press(customerID, customerID, fmt.Sprintf("bk:inc:%d", dbtest.ProductB))
		require.Equal(t, 2, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductB))

		s.press(customerID, customerID, fmt.Sprintf("bk:dec:%d", dbtest.ProductB))
		s.press(customerID, customerID, fmt.Sprintf("bk:dec:%d", dbtest.ProductB))

		require.Zero(t, dbtest.CountBasketLines(t, s.DB, customerID))
		edits := s.BotAPI.Calls("editMessageText")
		require.NotEmpty(t, edits)
		require.Contains(t, edits[len(edits)-1].Text(), "Your basket is empty")
	})

	s.Run("Normal case: concurrent increments all land", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")

		const presses = 8
		data := make([]string, presses)
		for i := range data {
			data[i] = fmt.Sprintf("bk:inc:%d", dbtest.ProductA)
		}
		s.pressAll(customerID, customerID, data...)

		require.Equal(t, presses, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductA))
	})

	s.Run("Normal case: interleaved increments and decrements converge", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 5)

		inc := fmt.Sprintf("bk:inc:%d", dbtest.ProductA)
		dec := fmt.Sprintf("bk:dec:%d", dbtest.ProductA)
		s.pressAll(customerID, customerID, inc, dec, inc, dec, inc, dec, inc, inc)

		require.Equal(t, 7, dbtest.BasketQuantity(t, s.DB, customerID, dbtest.ProductA))
	})

	s.Run("Error case: decrementing an absent product is a no-op", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")

		s.press(customerID, customerID, fmt.Sprintf("bk:dec:%d", dbtest.ProductA))

		require.Zero(t, dbtest.CountBasketLines(t, s.DB, customerID))
	})

	s.Run("Error case: unknown product is rejected", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")

		s.press(customerID, customerID, "bk:inc:999")

		require.Zero(t, dbtest.CountBasketLines(t, s.DB, customerID))
		answers := s.BotAPI.Calls("answerCallbackQuery")
		require.Equal(t, "Product not found!", answers[len(answers)-1].Body["text"])
	})
}

// =============================================================================
// Status changes
// =============================================================================

func (s *OrderSuite) TestStaffStatusChange() {
	s.Run("Normal case: staff marks the order delivered and the customer is told", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 2)
		id := s.placePickupOrder(dbtest.BranchChilonzor)
		s.BotAPI.Reset()

		s.press(staffUserID, s.Config.Bot.StaffChatID, fmt.Sprintf("st:%d:delivered", id))

		_, _, status, _ := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "delivered", status)

		edits := s.BotAPI.Calls("editMessageText")
		require.Len(t, edits, 1)
		require.Contains(t, edits[0].Text(), "Status: <b>DELIVERED</b>")

		toCustomer := s.BotAPI.SentTo(customerID)
		require.Len(t, toCustomer, 1)
		require.Contains(t, toCustomer[0].Text(), "DELIVERED")
	})

	s.Run("Error case: a settled order cannot be cancelled", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 1)
		id := s.placePickupOrder(dbtest.BranchChilonzor)

		s.press(staffUserID, s.Config.Bot.StaffChatID, fmt.Sprintf("st:%d:delivered", id))
		s.press(staffUserID, s.Config.Bot.StaffChatID, fmt.Sprintf("st:%d:cancelled", id))

		_, _, status, _ := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "delivered", status)
	})

	s.Run("Error case: customers cannot change statuses", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 1)
		id := s.placePickupOrder(dbtest.BranchChilonzor)

		s.press(customerID, customerID, fmt.Sprintf("st:%d:cancelled", id))

		_, _, status, _ := dbtest.LatestOrder(t, s.DB, customerID)
		require.Equal(t, "pending", status)
	})
}

// =============================================================================
// Staff API
// =============================================================================

func (s *OrderSuite) TestStaffAPI() {
	s.Run("Normal case: order detail and status update", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, customerID, "Alisher Karimov", "+998901234567")
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductA, 2)
		dbtest.AddBasketItem(t, s.DB, customerID, dbtest.ProductB, 1)
		id := s.placePickupOrder(dbtest.BranchChilonzor)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ordersURL, id), nil, s.Config.API.StaffToken)
		var got response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		expected := &response.OrderResponse{
			ID:              id,
			UserID:          customerID,
			CustomerName:    "Alisher Karimov",
			CustomerPhone:   ptr.Of("+998901234567"),
			FulfillmentType: "pickup",
			BranchID:        ptr.Of(dbtest.BranchChilonzor),
			BranchName:      ptr.Of("Chilonzor"),
			BranchLocation:  ptr.Of("Chilonzor 9, Tashkent"),
			Items: []response.OrderItemResponse{
				{ProductID: ptr.Of(dbtest.ProductA), ProductName: "Product A", ProductPrice: "10.00", Quantity: 2, Subtotal: "20.00"},
				{ProductID: ptr.Of(dbtest.ProductB), ProductName: "Product B", ProductPrice: "5.50", Quantity: 1, Subtotal: "5.50"},
			},
			Total:  "25.50",
			Status: "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "CreatedAt", "UpdatedAt"),
			cmpopts.SortSlices(func(a, b response.OrderItemResponse) bool { return a.ProductName < b.ProductName }),
		}
		if diff := cmp.Diff(expected, &got, opts...); diff != "" {
			t.Errorf("order response mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(statusURL, id),
			request.UpdateOrderStatusRequest{Status: "cancelled"}, s.Config.API.StaffToken)
		var changed response.OrderStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &changed)
		require.Equal(t, response.OrderStatusResponse{OrderID: id, Status: "cancelled", Changed: true}, changed)
	})

	s.Run("Error case: unknown order", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ordersURL, 999), nil, s.Config.API.StaffToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
	})

	s.Run("Error case: missing staff token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ordersURL, 1), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// Webhook
// =============================================================================

func (s *OrderSuite) TestWebhookSecret() {
	s.Run("Error case: wrong secret is rejected without side effects", func() {
		upd := telegram.Update{UpdateID: 1, Message: &telegram.Message{
			From: &telegram.User{ID: customerID, FirstName: "Alisher"},
			Chat: telegram.Chat{ID: customerID},
			Text: "/start",
		}}
		w := httptest.PerformWebhook(s.T(), s.Router, upd, "wrong")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
		require.Empty(s.T(), s.BotAPI.Calls("sendMessage"))
	})

	s.Run("Normal case: first contact asks for the phone number", func() {
		s.say(customerID, "/start")

		sent := s.BotAPI.SentTo(customerID)
		require.Len(s.T(), sent, 1)
		require.Contains(s.T(), sent[0].Text(), "telefon raqamingizni")
	})
}
