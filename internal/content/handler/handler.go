package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/assets"
	"github.com/devfolio/devfolio/backend/go-services/internal/content"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// Handler serves the CRUD routes for one content collection. The same
// handler code runs for every collection; behavior differences (validation,
// ordering, asset cleanup, single-active) come from the descriptor.
type Handler struct {
	desc    content.Descriptor
	store   content.Store
	cleaner *assets.Cleaner
}

func New(desc content.Descriptor, store content.Store, cleaner *assets.Cleaner) *Handler {
	return &Handler{desc: desc, store: store, cleaner: cleaner}
}

// Register wires the collection under /api/{name}. Lists are public; create,
// update and delete sit behind the session guard.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.desc.Name)
	g.GET("", h.List)
	g.POST("", middleware.RequireSession(), h.Create)
	g.PUT("/:id", middleware.RequireSession(), h.Update)
	g.DELETE("/:id", middleware.RequireSession(), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	metrics.ContentOperations.WithLabelValues(h.desc.Name, "list", "ok").Inc()
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		metrics.ContentOperations.WithLabelValues(h.desc.Name, "create", "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if h.desc.Prepare != nil {
		h.desc.Prepare(fields)
	}
	if err := h.desc.Validate(fields); err != nil {
		h.fail(c, "create", err)
		return
	}
	ctx := c.Request.Context()
	// an incoming active record demotes every existing one first;
	// clear-then-insert is two steps, not a transaction
	if h.desc.SingleActive && content.Record(fields).IsActive() {
		if err := h.store.ClearActive(ctx, ""); err != nil {
			h.fail(c, "create", err)
			return
		}
	}
	rec, err := h.store.Insert(ctx, fields)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	metrics.ContentOperations.WithLabelValues(h.desc.Name, "create", "ok").Inc()
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		metrics.ContentOperations.WithLabelValues(h.desc.Name, "update", "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ctx := c.Request.Context()
	old, err := h.store.Get(ctx, id)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	if h.desc.SingleActive && content.Record(patch).IsActive() {
		if err := h.store.ClearActive(ctx, id); err != nil {
			h.fail(c, "update", err)
			return
		}
	}
	if h.desc.AssetField != "" && h.cleaner != nil {
		newURL := content.Record(patch).StringField(h.desc.AssetField)
		h.cleaner.CleanupReplaced(ctx, h.desc.Name, old.StringField(h.desc.AssetField), newURL)
	}
	rec, err := h.store.Update(ctx, id, patch)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	metrics.ContentOperations.WithLabelValues(h.desc.Name, "update", "ok").Inc()
	c.JSON(http.StatusOK, rec)
}

// Delete is idempotent: deleting an id that no longer exists reports success
// and triggers no cleanup.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	old, err := h.store.Get(ctx, id)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		h.fail(c, "delete", err)
		return
	}
	if old != nil {
		if err := h.store.Delete(ctx, id); err != nil {
			h.fail(c, "delete", err)
			return
		}
		if h.desc.AssetField != "" && h.cleaner != nil {
			h.cleaner.CleanupRemoved(ctx, h.desc.Name, old.StringField(h.desc.AssetField))
		}
	}
	metrics.ContentOperations.WithLabelValues(h.desc.Name, "delete", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// fail maps typed errors onto the JSON error contract in one place.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.ContentOperations.WithLabelValues(h.desc.Name, op, "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
	case errors.Is(err, content.ErrNotFound):
		metrics.ContentOperations.WithLabelValues(h.desc.Name, op, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"message": h.desc.Name + " not found"})
	default:
		metrics.ContentOperations.WithLabelValues(h.desc.Name, op, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error handling " + h.desc.Name, "error": err.Error()})
	}
}
