package response

import (
	"time"

	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID    *int64 `json:"productId,omitempty"`
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

type OrderResponse struct {
	ID               int64               `json:"id"`
	UserID           int64               `json:"userId"`
	CustomerName     string              `json:"customerName"`
	CustomerUsername *string             `json:"customerUsername,omitempty"`
	CustomerPhone    *string             `json:"customerPhone,omitempty"`
	FulfillmentType  string              `json:"fulfillmentType"`
	Latitude         *float64            `json:"latitude,omitempty"`
	Longitude        *float64            `json:"longitude,omitempty"`
	BranchID         *int64              `json:"branchId,omitempty"`
	BranchName       *string             `json:"branchName,omitempty"`
	BranchLocation   *string             `json:"branchLocation,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	Total            string              `json:"total"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type OrderStatusResponse struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
	Changed bool   `json:"changed"`
}

// Money leaves the API as a fixed two-decimal string.
var decimalToString = copier.TypeConverter{
	SrcType: decimal.Decimal{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		return src.(decimal.Decimal).StringFixed(2), nil
	},
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	err := copier.CopyWithOption(&resp, v, copier.Option{
		DeepCopy:   true,
		Converters: []copier.TypeConverter{decimalToString},
	})
	if err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []OrderItemResponse{}
	}
	return &resp, nil
}

func FromStatusChange(r *commands.StatusChangeResult) *OrderStatusResponse {
	return &OrderStatusResponse{
		OrderID: r.OrderID,
		Status:  r.Status.String(),
		Changed: r.Changed,
	}
}
