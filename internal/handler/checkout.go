package handler

import (
	"errors"
	"fitmarket/internal/dto"
	"fitmarket/internal/middleware"
	"fitmarket/internal/service"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService    service.CheckoutService
	fulfillmentService service.FulfillmentService
	logger             *slog.Logger
}

func NewCheckoutHandler(
	checkoutService service.CheckoutService,
	fulfillmentService service.FulfillmentService,
	logger *slog.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService:    checkoutService,
		fulfillmentService: fulfillmentService,
		logger:             logger,
	}
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	buyerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id is required")
	}

	result, err := h.checkoutService.CreateSession(ctx, buyerID, &req)
	if errors.Is(err, service.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Reconcile is hit on return navigation from the provider. The response is
// always 200 with a terminal-or-pending state the page can render; failure
// causes are collapsed into a displayable message.
func (h *CheckoutHandler) Reconcile(c echo.Context) error {
	ctx := c.Request().Context()

	reference := c.QueryParam("reference")
	if reference == "" {
		reference = c.QueryParam("payment_intent")
	}
	if reference == "" {
		reference = c.QueryParam("session_id")
	}
	if reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing payment reference")
	}

	result, err := h.fulfillmentService.Reconcile(ctx, reference)
	if err != nil {
		h.logger.Warn("reconcile failed", "payment_ref", reference, "error", err)
		return c.JSON(http.StatusOK, &dto.ReconcileResponse{
			State:   service.StateFailed,
			Message: failureMessage(err),
		})
	}

	return c.JSON(http.StatusOK, result)
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrProvider):
		return "We could not verify your payment. Your session may have expired or been cancelled."
	case errors.Is(err, service.ErrStore):
		return "An error occurred while confirming your purchase. Please try again."
	default:
		return "We couldn't process your payment. Please contact support if the problem persists."
	}
}
