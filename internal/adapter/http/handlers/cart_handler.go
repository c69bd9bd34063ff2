package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "thirupugazh_pos/internal/adapter/http/dto/request"
	response "thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/domain/cart"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDiscount    = pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount percent must be a number between 0 and 100", http.StatusBadRequest)
)

// CartHandler exposes the menu and the editable bill.
type CartHandler struct {
	usecase usecase.ICartUseCase
	log     *zap.Logger
}

func NewCartHandler(uc usecase.ICartUseCase, log *zap.Logger) *CartHandler {
	return &CartHandler{usecase: uc, log: log.Named("cart.handler")}
}

func (h *CartHandler) ListMenu(c *gin.Context) {
	items, err := h.usecase.ListMenu(c.Request.Context())
	if err != nil {
		h.log.Error("list menu failed", zap.Error(err))
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

// AddItem opens a new draft bill when the route carries no bill_id.
func (h *CartHandler) AddItem(c *gin.Context) {
	billID := c.Param("bill_id")
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	priced, err := h.usecase.AddItem(c.Request.Context(), billID, payload.MenuItemID, payload.ResolveQuantity())
	if err != nil {
		h.log.Info("add item failed", zap.String("bill_id", billID), zap.String("menu_item_id", payload.MenuItemID), zap.Error(err))
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if billID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromPricedBill(priced))
}

// RemoveItem defaults to one unit when ?quantity is absent.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	billID := c.Param("bill_id")
	menuItemID := c.Param("menu_item_id")
	qty, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	priced, err := h.usecase.RemoveItem(c.Request.Context(), billID, menuItemID, qty)
	if err != nil {
		h.log.Info("remove item failed", zap.String("bill_id", billID), zap.String("menu_item_id", menuItemID), zap.Error(err))
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricedBill(priced))
}

func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	billID := c.Param("bill_id")
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	percent, err := payload.ResolvePercent()
	if err != nil {
		c.JSON(errInvalidDiscount.HTTPStatus, errInvalidDiscount.ToHTTPError())
		return
	}

	priced, err := h.usecase.ApplyDiscount(c.Request.Context(), billID, percent)
	if err != nil {
		h.log.Info("apply discount failed", zap.String("bill_id", billID), zap.Error(err))
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricedBill(priced))
}

func (h *CartHandler) GetBill(c *gin.Context) {
	priced, err := h.usecase.GetBill(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricedBill(priced))
}

// mapBillStateError covers the bill lookups and transitions shared by every bill route.
func mapBillStateError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrInvalidBillStatus):
		return pkg.NewDomainErrorSimple("INVALID_BILL_STATUS", "Operation not allowed in the current bill status", http.StatusConflict), true
	case errors.Is(err, usecase.ErrEmptyBill):
		return pkg.NewDomainErrorSimple("EMPTY_BILL", "Bill has no items", http.StatusUnprocessableEntity), true
	case errors.Is(err, entities.ErrUnknownRole), errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden), true
	}
	return nil, false
}

func mapCartError(err error) *pkg.AppError {
	if appErr, ok := mapBillStateError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_ON_BILL", "Item is not on the bill", http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be a positive integer", http.StatusBadRequest)
	case errors.Is(err, cart.ErrInvalidDiscount):
		return errInvalidDiscount
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
