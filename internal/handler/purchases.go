package handler

import (
	"errors"
	"fitmarket/internal/dto"
	"fitmarket/internal/middleware"
	"fitmarket/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PurchasesHandler struct {
	purchaseService service.PurchaseService
}

func NewPurchasesHandler(purchaseService service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseService: purchaseService,
	}
}

func (h *PurchasesHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	orders, err := h.purchaseService.ListOrders(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *PurchasesHandler) ListEntitlements(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	entitlements, err := h.purchaseService.ListEntitlements(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entitlements)
}

func (h *PurchasesHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.purchaseService.AdvanceOrder(ctx, c.Param("id"), req.Status)
	if errors.Is(err, service.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if errors.Is(err, service.ErrBadTransition) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
