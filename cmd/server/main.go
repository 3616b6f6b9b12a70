package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuseats/internal/controllers/http"
	mmysql "campuseats/internal/infra/mysql"
	"campuseats/internal/infra/rabbitmq"
	mysqlrepo "campuseats/internal/repository/mysql"
	"campuseats/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	vendorRepo := mysqlrepo.NewVendorRepository(db)
	menuRepo := mysqlrepo.NewMenuItemRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)
	notificationRepo := mysqlrepo.NewNotificationRepository(db)
	statsRepo := mysqlrepo.NewStatsRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	authSvc := services.NewAuthService(userRepo, secret)
	orderSvc := services.NewOrderService(orderRepo, vendorRepo, notificationRepo, publisher)
	orderSvc.SetRedisClient(redisClient)
	catalogSvc := services.NewCatalogService(vendorRepo, menuRepo)
	catalogSvc.SetRedisClient(redisClient)
	adminSvc := services.NewAdminService(statsRepo, orderRepo, vendorRepo, menuRepo, userRepo)
	notificationSvc := services.NewNotificationService(notificationRepo)

	sweeper := services.NewSweeper(orderRepo, notificationRepo, publisher)

	handler := http.NewHandler(authSvc, orderSvc, catalogSvc, adminSvc, notificationSvc, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &nethttp.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sweeper.Run(ctx)
	})

	g.Go(func() error {
		log.Printf("starting campuseats server on port %s", port)
		if err := srv.ListenAndServe(); !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server exited: %v", err)
	}
	log.Println("server stopped")
}
