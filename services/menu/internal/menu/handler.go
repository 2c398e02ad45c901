package menu

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/appetiteclub/chefsmenu/pkg/enums/course"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MaxBodyBytes caps the size of a create request body.
const MaxBodyBytes = 1 << 20

// Handler handles HTTP requests for the Menu service
type Handler struct {
	store  *Store
	stats  *StatsView
	logger apt.Logger
	config *apt.Config
	tlm    *telemetry.HTTP
}

// HandlerDeps groups the collaborators a Handler needs.
type HandlerDeps struct {
	Store *Store
	Stats *StatsView
}

// StatsResponse is the body of GET /menu/stats.
type StatsResponse struct {
	Stats
	Courses []CourseStats `json:"courses"`
}

// NewHandler creates a Handler. A missing store gets an empty one and a
// missing stats view is derived from the store.
func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	store := hd.Store
	if store == nil {
		store = NewStore()
	}
	stats := hd.Stats
	if stats == nil {
		stats = NewStatsView(store)
	}
	return &Handler{
		store:  store,
		stats:  stats,
		logger: logger,
		config: config,
		tlm:    telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the menu service
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.CreateMenuItem)
			r.Get("/", h.ListMenuItems)
			r.Get("/{id}", h.GetMenuItem)
			r.Delete("/{id}", h.DeleteMenuItem)
		})
		r.Get("/stats", h.GetStats)
		r.Get("/courses", h.ListCourses)
	})
}

// CreateMenuItem handles POST /menu/items
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateMenuItem")
	defer finish()
	log := h.log(r)

	draft, ok := h.decodeDraftPayload(w, r, log)
	if !ok {
		return
	}

	item, validationErrors := Submit(h.store, draft)
	if validationErrors != nil {
		log.Debug("validation failed", "errors", validationErrors.List())
		h.respondValidationErrors(w, validationErrors)
		return
	}

	log.Info("menu item added", "id", item.ID.String(), "name", item.Name, "course", item.Course)

	links := apt.RESTfulLinksFor(&item)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, item, links...)
}

// ListMenuItems handles GET /menu/items, optionally filtered by ?course=
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListMenuItems")
	defer finish()
	log := h.log(r)

	courseName := r.URL.Query().Get("course")
	if courseName == "" {
		apt.RespondCollection(w, h.store.List(), "menu/items")
		return
	}

	if !course.Valid(courseName) {
		log.Debug("unknown course filter", "course", courseName)
		apt.RespondError(w, http.StatusBadRequest, "Unknown course")
		return
	}

	apt.RespondCollection(w, h.store.ListByCourse(courseName), "menu/items")
}

// GetMenuItem handles GET /menu/items/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetMenuItem")
	defer finish()
	log := h.log(r)

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, found := h.store.Get(id)
	if !found {
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	links := apt.RESTfulLinksFor(&item)
	apt.RespondSuccess(w, item, links...)
}

// DeleteMenuItem handles DELETE /menu/items/{id}. Unknown ids succeed too.
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteMenuItem")
	defer finish()
	log := h.log(r)

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	h.store.Remove(id)
	log.Info("menu item removed", "id", id.String())

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /menu/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetStats")
	defer finish()

	stats := h.stats.Stats()
	apt.RespondSuccess(w, StatsResponse{
		Stats:   stats,
		Courses: stats.ByCourse(),
	})
}

// ListCourses handles GET /menu/courses
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListCourses")
	defer finish()

	names := make([]string, 0, len(course.All))
	for _, c := range course.All {
		names = append(names, c.Code())
	}
	apt.RespondSuccess(w, names)
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", apt.RequestIDFrom(r.Context()))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeDraftPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (Draft, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return Draft{}, false
	}

	var draft Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return Draft{}, false
	}

	return draft, true
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors ValidationErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}
