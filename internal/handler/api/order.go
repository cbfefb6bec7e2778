package api

import (
	"net/http"
	"strconv"

	reqdto "massfit-bot/internal/handler/dto/request"
	resdto "massfit-bot/internal/handler/dto/response"
	"massfit-bot/internal/handler/httperr"
	"massfit-bot/internal/handler/middleware"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	statuses commands.OrderStatusCommands
	q        queries.OrderQueries
}

func NewOrderHandler(statuses commands.OrderStatusCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{statuses: statuses, q: q}
}

// @Summary Get order
// @Description Get an order with its item snapshots
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render order", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update order status
// @Description Move a pending order to delivered or cancelled
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrForbidden, "Unauthorized", nil)
		return
	}
	id, err := parseOrderID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.statuses.ChangeStatus(c.Request.Context(), actor, commands.StatusChangeRequest{
		OrderID: id,
		Target:  req.Target(),
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, errs.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status", nil)
		case errs.Is(err, errs.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order status can no longer change", nil)
		case errs.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update order status", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(res))
}

func parseOrderID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.New("invalid order id " + strconv.Quote(c.Param("id")))
	}
	return id, nil
}
