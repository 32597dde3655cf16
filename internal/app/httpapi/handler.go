// Package httpapi exposes the REST surface of the recipes service.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietkitchen/recipes-api/internal/app"
	"github.com/vietkitchen/recipes-api/internal/app/services/orders"
	"github.com/vietkitchen/recipes-api/internal/app/services/recipes"
	"github.com/vietkitchen/recipes-api/internal/errors"
	"github.com/vietkitchen/recipes-api/internal/httputil"
	"github.com/vietkitchen/recipes-api/internal/middleware"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// handler bundles the HTTP endpoints for the application services.
type handler struct {
	app *app.Application
	log *logger.Logger
}

// Options tunes optional middleware on the returned router.
type Options struct {
	// RateLimiter, when non-nil, is installed in front of every route.
	RateLimiter *middleware.RateLimiter
}

// NewHandler returns a router exposing the full REST API. Recipe reads and
// client registration are public; the /orders tree requires a bearer token.
func NewHandler(application *app.Application, log *logger.Logger, opts Options) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	h := &handler{app: application, log: log}

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(metrics.Handler)
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handler)
	}

	r.HandleFunc("/", h.home).Methods(http.MethodGet)
	r.HandleFunc("/status", h.status).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// /recipes/search must not be swallowed by the {id} route.
	r.HandleFunc("/recipes/search", h.searchRecipes).Methods(http.MethodGet)
	r.HandleFunc("/recipes", h.listRecipes).Methods(http.MethodGet)
	r.HandleFunc("/recipes/{id:[0-9]+}", h.getRecipe).Methods(http.MethodGet)

	r.HandleFunc("/api-clients", h.registerClient).Methods(http.MethodPost)

	authMW := middleware.NewAuthMiddleware(application.Clients, log.WithModule("auth"))
	ordersRouter := r.PathPrefix("/orders").Subrouter()
	ordersRouter.Use(authMW.Handler)
	ordersRouter.HandleFunc("", h.createOrder).Methods(http.MethodPost)
	ordersRouter.HandleFunc("", h.listOrders).Methods(http.MethodGet)
	ordersRouter.HandleFunc("/{id:[0-9]+}", h.getOrder).Methods(http.MethodGet)
	ordersRouter.HandleFunc("/{id:[0-9]+}", h.updateOrder).Methods(http.MethodPatch)
	ordersRouter.HandleFunc("/{id:[0-9]+}", h.deleteOrder).Methods(http.MethodDelete)

	return r
}

// Service endpoints -----------------------------------------------------------

func (h *handler) home(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Recipes API! Try /status or /recipes.",
	})
}

func (h *handler) status(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "Recipes API is running",
	})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "recipes-api",
	})
}

// Recipe endpoints ------------------------------------------------------------

func (h *handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := recipes.Filter{
		Type:    query.Get("type"),
		Cuisine: query.Get("cuisine"),
	}
	if raw := query.Get("max_calories"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MaxCalories = &v
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = v
		}
	}

	result, err := h.app.Recipes.List(r.Context(), filter)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.app.Recipes.Get(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Recipes.Search(r.Context(), r.URL.Query().Get("ingredient"))
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// Client endpoints ------------------------------------------------------------

func (h *handler) registerClient(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ClientName  string `json:"clientName"`
		ClientEmail string `json:"clientEmail"`
	}
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		httputil.WriteServiceError(w, errors.Validation("clientName and clientEmail required"))
		return
	}

	token, err := h.app.Clients.Register(r.Context(), payload.ClientName, payload.ClientEmail)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"accessToken": token})
}

// Order endpoints -------------------------------------------------------------

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RecipeID     int    `json:"recipeId"`
		CustomerName string `json:"customerName"`
	}
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		httputil.WriteServiceError(w, errors.Validation("recipeId and customerName required"))
		return
	}

	o, err := h.app.Orders.Create(r.Context(), payload.RecipeID, payload.CustomerName)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, o)
}

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Orders.List(r.Context())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	o, err := h.app.Orders.Get(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (h *handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload struct {
		CustomerName *string `json:"customerName"`
	}
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		httputil.WriteServiceError(w, errors.Validation("invalid request body"))
		return
	}

	o, err := h.app.Orders.Update(r.Context(), id, orders.Patch{CustomerName: payload.CustomerName})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (h *handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.app.Orders.Delete(r.Context(), id); err != nil {
		httputil.WriteServiceError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}

// pathID extracts the numeric {id} route variable. The route pattern
// guarantees digits, so a parse failure means a routing bug.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}
