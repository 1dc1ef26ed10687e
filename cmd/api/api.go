package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/forno-storefront/internal/catalog"
	"github.com/Beka01247/forno-storefront/internal/checkout"
	"github.com/Beka01247/forno-storefront/internal/pricing"
	"github.com/Beka01247/forno-storefront/internal/ratelimiter"
	"github.com/Beka01247/forno-storefront/internal/service"
	"github.com/Beka01247/forno-storefront/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

type application struct {
	config       config
	logger       *zap.SugaredLogger
	rateLimiter  ratelimiter.Limiter
	catalog      *catalog.Catalog
	pricing      *pricing.Engine
	checkout     *checkout.Adapter
	carts        *service.CartService
	orders       *service.OrderService
	sheetSync    *service.SheetSyncService
	syncWorker   *worker.OrderSyncWorker
	healthChecks map[string]healthCheck
	closers      []closer
}

type closer struct {
	name  string
	close func(ctx context.Context) error
}

type config struct {
	addr        string
	env         string
	deliveryFee int
	orderStore  string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	postgres    postgresConfig
	rabbitMQ    rabbitMQConfig
	redis       redisConfig
	sheets      sheetsConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type postgresConfig struct {
	URL      string
	MaxConns int
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type sheetsConfig struct {
	CredentialsPath      string
	OrdersSpreadsheetID  string
	CatalogSpreadsheetID string
	CatalogRange         string
	Timezone             string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", app.listCatalogHandler)
			r.Get("/products/{product_id}", app.getProductHandler)
			r.Get("/{category}", app.listCategoryHandler)
		})

		r.Post("/quote", app.quoteHandler)

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", app.createCartHandler)

			r.Route("/{cart_id}", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.deleteCartHandler)
				r.Post("/items", app.addItemHandler)
				r.Patch("/items/{index}", app.updateItemHandler)
				r.Delete("/items/{index}", app.removeItemHandler)
				r.Post("/checkout", app.checkoutHandler)
			})
		})

		r.Post("/orders", app.createOrderHandler)
		r.Get("/orders/{order_id}", app.getOrderHandler)

		r.Post("/sheets/initialize", app.initializeSheetHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	if app.syncWorker != nil {
		if err := app.syncWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order sync worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.syncWorker != nil {
			app.syncWorker.Stop()
		}

		err := srv.Shutdown(ctx)

		// close in reverse order of opening
		for i := len(app.closers) - 1; i >= 0; i-- {
			c := app.closers[i]
			if err := c.close(ctx); err != nil {
				app.logger.Errorw("error closing connection", "name", c.name, "error", err)
			} else {
				app.logger.Infow("connection closed gracefully", "name", c.name)
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env, "order_store", app.config.orderStore)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
