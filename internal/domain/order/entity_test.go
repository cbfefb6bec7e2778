//go:build unit

package order_test

import (
	"math"
	"testing"
	"time"

	"massfit-bot/internal/domain/order"
	"massfit-bot/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewFromBasket(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewBasketBuilder().WithLine(2, "Product B", "7.25", 4).BuildDomain()
		f, err := order.NewPickup(3)
		require.NoError(t, err)

		o, err := order.NewFromBasket(b, f, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, b.UserID, o.UserID())
		assert.Equal(t, "49.00", o.Total().StringFixed(2))
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Zero(t, o.ID())

		want := []string{"Product A", "Product B"}
		got := make([]string, 0, len(o.Items()))
		for _, it := range o.Items() {
			got = append(got, it.ProductName)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("item names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("合計は明細小計の和", func(t *testing.T) {
		b := builder.NewBasketBuilder().WithLine(2, "Product B", "0.10", 3).BuildDomain()
		o, err := order.NewFromBasket(b, order.NewDelivery(order.Location{Latitude: 41.3, Longitude: 69.2}), now)
		require.NoError(t, err)

		sum := o.Items()[0].Subtotal().Add(o.Items()[1].Subtotal())
		assert.True(t, sum.Equal(o.Total()))
		assert.Equal(t, "20.30", o.Total().StringFixed(2))
	})

	t.Run("空のバスケットNG", func(t *testing.T) {
		_, err := order.NewFromBasket(builder.NewBasketBuilder().Empty().BuildDomain(), order.NewDelivery(order.Location{}), now)
		assert.ErrorIs(t, err, order.ErrEmptyBasket)
	})

	t.Run("未完成のフルフィルメントNG", func(t *testing.T) {
		_, err := order.NewFromBasket(builder.NewBasketBuilder().BuildDomain(), order.Fulfillment{}, now)
		assert.ErrorIs(t, err, order.ErrInvalidFulfillment)
	})

	t.Run("価格スナップショットはバスケットと独立", func(t *testing.T) {
		b := builder.NewBasketBuilder().BuildDomain()
		o, err := order.NewFromBasket(b, order.NewDelivery(order.Location{}), now)
		require.NoError(t, err)

		b.Lines[0].Quantity = 99
		assert.Equal(t, 2, o.Items()[0].Quantity)
	})
}

func TestTransitionTo(t *testing.T) {
	later := now.Add(time.Minute)

	cases := []struct {
		name        string
		from        order.Status
		target      order.Status
		wantChanged bool
		wantStatus  order.Status
		errIs       error
	}{
		{name: "保留中から配達済みOK", from: order.StatusPending, target: order.StatusDelivered, wantChanged: true, wantStatus: order.StatusDelivered},
		{name: "保留中からキャンセルOK", from: order.StatusPending, target: order.StatusCancelled, wantChanged: true, wantStatus: order.StatusCancelled},
		{name: "配達済みの再適用は変更なし", from: order.StatusDelivered, target: order.StatusDelivered, wantStatus: order.StatusDelivered},
		{name: "キャンセルの再適用は変更なし", from: order.StatusCancelled, target: order.StatusCancelled, wantStatus: order.StatusCancelled},
		{name: "配達済みからキャンセルNG", from: order.StatusDelivered, target: order.StatusCancelled, wantStatus: order.StatusDelivered, errIs: order.ErrStatusTransition},
		{name: "キャンセルから配達済みNG", from: order.StatusCancelled, target: order.StatusDelivered, wantStatus: order.StatusCancelled, errIs: order.ErrStatusTransition},
		{name: "保留中への変更NG", from: order.StatusPending, target: order.StatusPending, wantStatus: order.StatusPending, errIs: order.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := builder.NewOrderBuilder().WithStatus(tc.from).BuildDomain()
			before := o.UpdatedAt()

			changed, err := o.TransitionTo(tc.target, later)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantStatus, o.Status())
			if changed {
				assert.Equal(t, later, o.UpdatedAt())
			} else {
				assert.Equal(t, before, o.UpdatedAt())
			}
		})
	}
}

func TestParseTargetStatus(t *testing.T) {
	for _, s := range []string{"delivered", "cancelled"} {
		st, err := order.ParseTargetStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	for _, s := range []string{"pending", "Delivered", "done", ""} {
		_, err := order.ParseTargetStatus(s)
		assert.ErrorIs(t, err, order.ErrInvalidStatus, s)
	}
}

func TestNewLocation(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		ok       bool
	}{
		{name: "タシケントOK", lat: 41.2995, lon: 69.2401, ok: true},
		{name: "境界値OK", lat: -90, lon: 180, ok: true},
		{name: "緯度超過NG", lat: 90.0001, lon: 0},
		{name: "経度超過NG", lat: 0, lon: -180.5},
		{name: "NaN NG", lat: math.NaN(), lon: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := order.NewLocation(tc.lat, tc.lon)
			if !tc.ok {
				assert.ErrorIs(t, err, order.ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.lat, loc.Latitude)
			assert.Equal(t, tc.lon, loc.Longitude)
		})
	}
}

func TestFulfillment(t *testing.T) {
	t.Run("受取は支店IDが必須", func(t *testing.T) {
		_, err := order.NewPickup(0)
		assert.ErrorIs(t, err, order.ErrInvalidFulfillment)

		f, err := order.NewPickup(3)
		require.NoError(t, err)
		assert.False(t, f.IsDelivery())
		assert.Nil(t, f.Location())
		assert.Equal(t, int64(3), *f.BranchID())
	})

	t.Run("配送は座標のみ", func(t *testing.T) {
		f := order.NewDelivery(order.Location{Latitude: 1, Longitude: 2})
		assert.True(t, f.IsDelivery())
		assert.Nil(t, f.BranchID())
		assert.Equal(t, order.FulfillmentDelivery, f.Type())
	})
}
