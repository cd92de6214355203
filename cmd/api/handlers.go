package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"skuflow/pkg/importer"
	"skuflow/pkg/listing"
	"skuflow/pkg/logger"
	"skuflow/pkg/order"
	"skuflow/pkg/otel"
	"skuflow/pkg/payout"
	"skuflow/pkg/sku"
)

const listingCacheTTL = 5 * time.Minute

type app struct {
	log     *logger.Logger
	catalog sku.Catalog
	ledger  order.Ledger
	imp     *importer.Importer
	cache   *redis.Client
	now     func() time.Time
}

func newApp(log *logger.Logger, catalog sku.Catalog, ledger order.Ledger, imp *importer.Importer, cache *redis.Client) *app {
	return &app{
		log:     log,
		catalog: catalog,
		ledger:  ledger,
		imp:     imp,
		cache:   cache,
		now:     time.Now,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, errorResponse{Error: message})
}

// importCSVHandler imports SKUs from an uploaded CSV file.
// @Summary Import SKUs from CSV
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with barcode, title, brand, image_url columns"
// @Success 200 {object} importer.Report
// @Failure 400 {object} errorResponse
// @Router /import-csv [post]
func (a *app) importCSVHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "importCSVHandler")
	defer span.End()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		respondError(w, http.StatusBadRequest, "file must be a CSV")
		return
	}

	report, err := a.imp.ImportCSV(ctx, file)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidHeader) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error(ctx, "import csv", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.log.Info(ctx, "csv imported", "imported", report.Imported, "skipped", len(report.Skipped))
	respond(w, http.StatusOK, report)
}

type deliveredRequest struct {
	SKUID       string `json:"skuId"`
	DeliveredAt string `json:"delivered_at"`
}

// orderDeliveredHandler records an order delivery notification.
// @Summary Record an order delivery
// @Accept json
// @Produce json
// @Param notification body deliveredRequest true "Delivery notification"
// @Success 200
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /webhook/order-delivered [post]
func (a *app) orderDeliveredHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "orderDeliveredHandler")
	defer span.End()

	var req deliveredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SKUID == "" || req.DeliveredAt == "" {
		respondError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if _, err := a.catalog.GetByID(ctx, req.SKUID); err != nil {
		if errors.Is(err, sku.ErrNotFound) {
			respondError(w, http.StatusNotFound, "SKU not found")
			return
		}
		a.log.Error(ctx, "sku lookup", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	deliveredAt, err := time.Parse(time.RFC3339, req.DeliveredAt)
	if err != nil {
		respondError(w, http.StatusBadRequest, `invalid date format, use ISO8601 (e.g. "2025-06-10T12:00:00Z")`)
		return
	}
	if deliveredAt.After(a.now()) {
		respondError(w, http.StatusBadRequest, "delivery date cannot be in the future")
		return
	}

	if err := a.ledger.Upsert(ctx, order.Order{SKUID: req.SKUID, DeliveredAt: deliveredAt}); err != nil {
		a.log.Error(ctx, "upsert order", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "order delivery recorded successfully"})
}

// payoutStatusHandler reports payout eligibility for a SKU's order.
// @Summary Get payout status for a SKU
// @Produce json
// @Param skuId path string true "SKU ID"
// @Success 200
// @Failure 404 {object} errorResponse
// @Router /payout-status/{skuId} [get]
func (a *app) payoutStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "payoutStatusHandler")
	defer span.End()

	skuID := mux.Vars(r)["skuId"]
	o, err := a.ledger.GetBySKU(ctx, skuID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondError(w, http.StatusNotFound, "order for this SKU not found")
			return
		}
		a.log.Error(ctx, "get order", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]payout.Status{"status": payout.Evaluate(o.DeliveredAt, a.now())})
}

// skuListingsHandler returns marketplace listings for one SKU. Catalog
// entries are immutable, so cached listings never go stale.
// @Summary Get marketplace listings for a SKU
// @Produce json
// @Param skuId path string true "SKU ID"
// @Success 200 {object} listing.Listing
// @Failure 404 {object} errorResponse
// @Router /sku/{skuId}/listings [get]
func (a *app) skuListingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "skuListingsHandler")
	defer span.End()

	skuID := mux.Vars(r)["skuId"]
	cacheKey := "listing:" + skuID
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, cacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	s, err := a.catalog.GetByID(ctx, skuID)
	if err != nil {
		if errors.Is(err, sku.ErrNotFound) {
			respondError(w, http.StatusNotFound, "SKU not found")
			return
		}
		a.log.Error(ctx, "get sku", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	l := listing.Build(s)
	if a.cache != nil {
		if b, err := json.Marshal(l); err == nil {
			if err := a.cache.Set(ctx, cacheKey, b, listingCacheTTL).Err(); err != nil {
				a.log.Warn(ctx, "listing cache set", "error", err)
			}
		}
	}
	respond(w, http.StatusOK, l)
}

type skuListing struct {
	SKUID string `json:"sku_id"`
	listing.Listing
}

// allListingsHandler returns marketplace listings for every SKU.
// @Summary Get marketplace listings for all SKUs
// @Produce json
// @Success 200 {array} skuListing
// @Router /listings [get]
func (a *app) allListingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "allListingsHandler")
	defer span.End()

	skus, err := a.catalog.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list skus", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]skuListing, 0, len(skus))
	for _, s := range skus {
		out = append(out, skuListing{SKUID: s.ID, Listing: listing.Build(s)})
	}
	respond(w, http.StatusOK, out)
}

func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *app) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		a.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.status,
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
		)
	})
}
