package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/payment。見積りと決済確定。
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type MakePaymentRequest struct {
	PaymentMethodToken string `json:"payment_method_token" validate:"required"`
	ShippingID         int64  `json:"shipping_id" validate:"required,gt=0"`
	CouponName         string `json:"coupon_name"`

	FullName            string `json:"full_name" validate:"required"`
	AddressLine1        string `json:"address_line_1" validate:"required"`
	AddressLine2        string `json:"address_line_2"`
	City                string `json:"city" validate:"required"`
	StateProvinceRegion string `json:"state_province_region" validate:"required"`
	PostalZipCode       string `json:"postal_zip_code" validate:"required"`
	CountryRegion       string `json:"country_region" validate:"required"`
	TelephoneNumber     string `json:"telephone_number" validate:"required"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/payment")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("/get-token", h.getToken)
	g.GET("/get-payment-total", h.getPaymentTotal)
	g.POST("/make-payment", h.makePayment)
}

func (h *PaymentHandler) getToken(c echo.Context) error {
	out, err := h.uc.GetClientToken(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// shipping_id / coupon_name はクエリで受ける
func (h *PaymentHandler) getPaymentTotal(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var shippingID int64
	if raw := c.QueryParam("shipping_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shipping id"})
		}
		shippingID = id
	}
	couponName := c.QueryParam("coupon_name")

	out, err := h.uc.GetPaymentTotal(c.Request().Context(), userID, shippingID, couponName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) makePayment(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req MakePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required fields"})
	}

	out, err := h.uc.MakePayment(c.Request().Context(), userID, usecase.MakePaymentInput{
		PaymentMethodToken: req.PaymentMethodToken,
		ShippingID:         req.ShippingID,
		CouponName:         req.CouponName,

		FullName:            req.FullName,
		AddressLine1:        req.AddressLine1,
		AddressLine2:        req.AddressLine2,
		City:                req.City,
		StateProvinceRegion: req.StateProvinceRegion,
		PostalZipCode:       req.PostalZipCode,
		CountryRegion:       req.CountryRegion,
		TelephoneNumber:     req.TelephoneNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
