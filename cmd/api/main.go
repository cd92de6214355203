package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "skuflow/docs"
	"skuflow/pkg/importer"
	"skuflow/pkg/logger"
	"skuflow/pkg/order"
	ordermem "skuflow/pkg/order/memory"
	orderpg "skuflow/pkg/order/postgres"
	"skuflow/pkg/otel"
	"skuflow/pkg/sku"
	skumem "skuflow/pkg/sku/memory"
	skupg "skuflow/pkg/sku/postgres"
)

// @title SkuFlow API
// @version 1.0
// @description Inventory and order webhook API
// @host localhost:8080
// @BasePath /
func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "skuflow", otel.GetTraceID)
	if err := run(log); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	ctx := context.Background()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "skuflow",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		return err
	}
	defer shutdown(ctx)
	tracer := tp.Tracer("skuflow")

	var catalog sku.Catalog
	var ledger order.Ledger
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		pgCatalog := skupg.New(db)
		pgLedger := orderpg.New(db)
		if err := pgCatalog.Migrate(ctx); err != nil {
			return err
		}
		if err := pgLedger.Migrate(ctx); err != nil {
			return err
		}
		catalog, ledger = pgCatalog, pgLedger
		log.Info(ctx, "using postgres stores")
	} else {
		catalog, ledger = skumem.New(), ordermem.New()
		log.Info(ctx, "using in-memory stores")
	}

	var cache *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: addr})
		defer cache.Close()
		log.Info(ctx, "listing cache enabled", "addr", addr)
	}

	app := newApp(log, catalog, ledger, importer.New(catalog), cache)
	r := newRouter(app, tracer)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-shutdownCtx.Done():
		log.Info(ctx, "shutdown signal received")
		ctxStop, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxStop); err != nil {
			return err
		}
	}
	log.Info(ctx, "service stopped")
	return nil
}

func newRouter(a *app, tracer trace.Tracer) *mux.Router {
	r := mux.NewRouter()
	r.Use(traceMiddleware(tracer), a.logMiddleware)
	r.HandleFunc("/import-csv", a.importCSVHandler).Methods(http.MethodPost)
	r.HandleFunc("/webhook/order-delivered", a.orderDeliveredHandler).Methods(http.MethodPost)
	r.HandleFunc("/payout-status/{skuId}", a.payoutStatusHandler).Methods(http.MethodGet)
	r.HandleFunc("/sku/{skuId}/listings", a.skuListingsHandler).Methods(http.MethodGet)
	r.HandleFunc("/listings", a.allListingsHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", a.healthHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func traceMiddleware(tracer trace.Tracer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.InjectTracing(r.Context(), tracer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
