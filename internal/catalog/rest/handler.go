// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	producterrors "github.com/ikamunya/productdir/internal/catalog/errors"
	"github.com/ikamunya/productdir/internal/catalog/service"
	"github.com/ikamunya/productdir/pkg/web"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type Handler struct {
	service  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog REST handler.
func NewHandler(svc service.CatalogService, logger *slog.Logger) *Handler {
	validate := validator.New()
	// Report validation errors in terms of the JSON field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		service:  svc,
		validate: validate,
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
// Mutating routes are wrapped in the given auth middleware, so the key
// check always runs before validation or lookup.
func (h *Handler) RegisterRoutes(r *chi.Mux, auth func(http.Handler) http.Handler) {
	r.Get("/", h.Welcome)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.Query)
		r.Get("/stats", h.Stats)
		r.With(auth).Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.With(auth).Put("/", h.Update)
			r.With(auth).Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Welcome greets API clients at the root path.
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the Product API! Go to /api/products to see all products."))
}

// Query lists products with optional category and search filters and a
// pagination window. page defaults to 1 and limit to 10; both must be
// integers and limit must be positive.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	page, ok := h.parseIntParam(w, r, mLogger, "page", defaultPage, false)
	if !ok {
		return
	}
	limit, ok := h.parseIntParam(w, r, mLogger, "limit", defaultLimit, true)
	if !ok {
		return
	}

	q := service.ProductQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		Limit:    limit,
	}
	mLogger.DebugContext(r.Context(), "Received request to list products",
		"category", q.Category, "search", q.Search, "page", q.Page, "limit", q.Limit)

	result, err := h.service.Query(r.Context(), q)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list",
		"total", result.TotalProducts, "count", len(result.Products))
	web.RespondJSON(w, mLogger, http.StatusOK, result)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product. The auth middleware has
// already admitted the request by the time validation runs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var createDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&createDto); err != nil {
		mLogger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(createDto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, validationMessage(validationErrors))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	newProduct, err := h.service.Create(r.Context(), createDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, newProduct)
}

// Update applies a partial update to an existing product. Omitted fields
// keep their current values; explicitly provided zero values are applied.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	var updateDto service.ProductUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&updateDto); err != nil {
		mLogger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, updateDto)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID and echoes the removed record.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	deleted, err := h.service.DeleteByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"message":        "Product deleted successfully",
		"deletedProduct": deleted,
	})
}

// Stats reports the collection size and a per-category record count.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error computing product stats", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to compute product stats")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, stats)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// parseIntParam reads an integer query parameter, falling back to the
// default when absent. requirePositive additionally rejects values below 1
// (the documented limit policy); page may be any integer since an
// out-of-range page yields an empty slice instead of an error.
func (h *Handler) parseIntParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string, def int, requirePositive bool) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || (requirePositive && value < 1) {
		web.RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, raw))
		return 0, false
	}
	return value, true
}

// validationMessage folds field errors into a single message naming each
// violated requirement.
func validationMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		parts = append(parts, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
	}
	return "Validation failed: " + strings.Join(parts, ", ")
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
