package server

import (
	"app/internal/handler"
)

type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Payment  *handler.PaymentHandler
	Order    *handler.OrderHandler
	Coupon   *handler.CouponHandler
	Shipping *handler.ShippingHandler
}

// ルーティングはここに集約する
func (s *Server) RegisterRoutes(h Handlers) {
	h.Product.RegisterRoutes(s.echo)
	h.Coupon.RegisterRoutes(s.echo)
	h.Shipping.RegisterRoutes(s.echo)

	//認証必須のグループ
	h.Cart.RegisterRoutes(s.echo, s.cfg)
	h.Payment.RegisterRoutes(s.echo, s.cfg)
	h.Order.RegisterRoutes(s.echo, s.cfg)
}
