package request

import "strings"

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) Target() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
