package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShivChilu/chicken-shop/internal/config"
	httpctrl "github.com/ShivChilu/chicken-shop/internal/controllers/http"
	"github.com/ShivChilu/chicken-shop/internal/infra"
	mmongo "github.com/ShivChilu/chicken-shop/internal/infra/mongo"
	mmysql "github.com/ShivChilu/chicken-shop/internal/infra/mysql"
	"github.com/ShivChilu/chicken-shop/internal/infra/orderlog"
	"github.com/ShivChilu/chicken-shop/internal/infra/rabbitmq"
	"github.com/ShivChilu/chicken-shop/internal/logger"
	"github.com/ShivChilu/chicken-shop/internal/realtime"
	"github.com/ShivChilu/chicken-shop/internal/repository"
	"github.com/ShivChilu/chicken-shop/internal/repository/mongodb"
	"github.com/ShivChilu/chicken-shop/internal/repository/sqldb"
	"github.com/ShivChilu/chicken-shop/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = ".env"
	}
	cf, err := config.Load(configFile)
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cf.LogLevel, cf.LogFormat)
	if err := run(cf, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cf *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("store", cf.StoreDriver).
		Bool("admin_pin_set", os.Getenv("ADMIN_PIN") != "").
		Bool("mongo_url_set", os.Getenv("MONGO_URL") != "").
		Msg("starting")

	store, err := openStore(ctx, cf)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	hub := realtime.NewHub(logger.Component(log, "hub"), cf.AllowedOrigins())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(gctx) })

	// Without redis the hub is the only live target. With it, events go
	// through the relay and every replica's hub picks them up from there.
	var events realtime.Fanout
	if cf.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cf.RedisAddr,
			Password:     cf.RedisPassword,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		relay := realtime.NewRedisRelay(rdb, realtime.DefaultRelayChannel, hub, logger.Component(log, "relay"))
		g.Go(func() error {
			if err := relay.Run(gctx); err != nil {
				log.Error().Err(err).Msg("redis relay stopped, events reach local observers only")
			}
			return nil
		})
		events = append(events, relay)
	} else {
		events = append(events, hub)
	}

	if cf.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewPublisher(cf.RabbitMQURL, cf.RabbitMQExchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
		events = append(events, publisher)
	}

	notifier := infra.NewWhatsAppClient(cf.WhatsAppBaseURL, cf.WhatsAppPhone, cf.WhatsAppAPIKey, infra.NotifyTimeout)
	orders := services.NewOrderService(store.Orders, orderlog.New(cf.OrderLogFile), notifier, events, logger.Component(log, "orders"))

	handler := httpctrl.NewHandler(httpctrl.Services{
		Orders:   orders,
		Catalog:  services.NewCatalogService(store.Categories, store.Products),
		Pincodes: services.NewPincodeService(store.Pincodes),
		Admin:    services.NewAdminService(cf.AdminPin),
		Seed:     services.NewSeedService(store, logger.Component(log, "seed")),
		Uploads:  services.NewUploadService(cf.UploadDir, "/uploads"),
	}, hub, logger.Component(log, "api"))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpctrl.RequestLogger(logger.Component(log, "http")))
	r.Use(cors.New(corsConfig(cf.AllowedOrigins())))
	r.Static("/uploads", cf.UploadDir)
	handler.RegisterRoutes(r)

	if err := os.MkdirAll(cf.UploadDir, 0o755); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cf.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cf *config.Config) (*repository.Store, error) {
	if cf.StoreDriver == config.DriverMySQL {
		db, err := mmysql.Open(cf.MySQL)
		if err != nil {
			return nil, err
		}
		return sqldb.NewStore(db), nil
	}
	db, err := mmongo.Connect(ctx, cf.MongoURL, cf.DBName)
	if err != nil {
		return nil, err
	}
	return mongodb.NewStore(db), nil
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}
