//go:build unit

package callback_test

import (
	"strings"
	"testing"

	"massfit-bot/internal/pkg/callback"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		data string
		want callback.Action
	}{
		{data: callback.BasketInc(5), want: callback.Action{Kind: callback.KindBasketInc, ID: 5}},
		{data: callback.BasketDec(5), want: callback.Action{Kind: callback.KindBasketDec, ID: 5}},
		{data: callback.BasketAdd(12), want: callback.Action{Kind: callback.KindBasketAdd, ID: 12}},
		{data: callback.BasketShow(), want: callback.Action{Kind: callback.KindBasketShow}},
		{data: callback.BasketNoop(), want: callback.Action{Kind: callback.KindBasketNoop}},
		{data: callback.CheckoutStart(), want: callback.Action{Kind: callback.KindCheckoutStart}},
		{data: callback.CheckoutDelivery(), want: callback.Action{Kind: callback.KindCheckoutDeliv}},
		{data: callback.CheckoutPickup(), want: callback.Action{Kind: callback.KindCheckoutPickup}},
		{data: callback.CheckoutBranch(3), want: callback.Action{Kind: callback.KindCheckoutBranch, ID: 3}},
		{data: callback.CheckoutYes(), want: callback.Action{Kind: callback.KindCheckoutYes}},
		{data: callback.CheckoutNo(), want: callback.Action{Kind: callback.KindCheckoutNo}},
		{data: callback.Product(9), want: callback.Action{Kind: callback.KindProduct, ID: 9}},
		{data: callback.Category("weight_gain"), want: callback.Action{Kind: callback.KindCategory, Arg: "weight_gain"}},
		{data: callback.OrderStatus(42, "cancelled"), want: callback.Action{Kind: callback.KindOrderStatus, ID: 42, Arg: "cancelled"}},
	}

	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			got, err := callback.Parse(tc.data)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("action mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"bk:inc",
		"bk:inc:",
		"bk:inc:0",
		"bk:inc:-3",
		"bk:inc:abc",
		"bk:jump:1",
		"co:branch:x",
		"st:42",
		"st:42:",
		"st:abc:delivered",
		"ct:",
		"pr:",
		"unknown",
		"bk:inc:1:2:3",
		"ct:" + strings.Repeat("x", 70),
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := callback.Parse(in)
			assert.ErrorIs(t, err, callback.ErrMalformed)
		})
	}
}

func TestEncodedLengthFitsButtonLimit(t *testing.T) {
	assert.LessOrEqual(t, len(callback.OrderStatus(9223372036854775807, "cancelled")), 64)
	assert.LessOrEqual(t, len(callback.BasketInc(9223372036854775807)), 64)
}
