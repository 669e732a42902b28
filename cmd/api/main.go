package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infragw "app/internal/infra/gateway"
	infrarepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envはローカル用。無ければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.GoEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.FixedPriceCoupon{},
		&model.PercentageCoupon{},
		&model.Shipping{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//repository
	productRepo := infrarepo.NewProductGormRepository(gormDB)
	cartItemRepo := infrarepo.NewCartItemGormRepository(gormDB)
	couponRepo := infrarepo.NewCouponGormRepository(gormDB)
	shippingRepo := infrarepo.NewShippingGormRepository(gormDB)
	orderRepo := infrarepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infrarepo.NewOrderItemGormRepository(gormDB)
	txManager := infrarepo.NewTxManagerGorm(gormDB)

	//gateway
	gw := infragw.NewStripeGateway(cfg.StripeSecretKey)

	//usecase
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo)
	paymentUC := usecase.NewPaymentUsecase(
		txManager, cartItemRepo, productRepo, shippingRepo, couponRepo,
		gw, logger, cfg.Currency,
	)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo)
	couponUC := usecase.NewCouponUsecase(couponRepo)
	shippingUC := usecase.NewShippingUsecase(shippingRepo)

	//server
	srv := server.New(cfg, logger)
	srv.RegisterRoutes(server.Handlers{
		Product:  handler.NewProductHandler(productUC),
		Cart:     handler.NewCartHandler(cartUC),
		Payment:  handler.NewPaymentHandler(paymentUC),
		Order:    handler.NewOrderHandler(orderUC),
		Coupon:   handler.NewCouponHandler(couponUC),
		Shipping: handler.NewShippingHandler(shippingUC),
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Info("server stopped", zap.Error(err))
		}
	}()

	//SIGINT/SIGTERMで止める
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
