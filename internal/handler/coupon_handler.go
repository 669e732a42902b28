package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/coupons
type CouponHandler struct {
	uc *usecase.CouponUsecase
}

// DI
func NewCouponHandler(uc *usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

func (h *CouponHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/coupons")

	g.GET("/check-coupon", h.checkCoupon)
}

func (h *CouponHandler) checkCoupon(c echo.Context) error {
	out, err := h.uc.CheckCoupon(c.Request().Context(), c.QueryParam("coupon_name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
