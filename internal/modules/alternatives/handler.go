package alternatives

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wortkiste/core/internal/models"
	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
	db  *gorm.DB
}

func NewHandler(svc *Service, db *gorm.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

// Alternatives are a shared read-mostly feature, so the routes stay open.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	g := rg.Group("/alternatives")

	g.POST("/generate", h.generate)
	g.GET("/summary", h.summary)
	g.GET("/:id", h.aggregate)
	g.DELETE("/:id", h.deleteAll)
}

// POST /alternatives/generate
func (h *Handler) generate(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.svc.Generate(c.Request.Context(), dto.Item)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, view)
}

// GET /alternatives/summary
func (h *Handler) summary(c *gin.Context) {
	counts, err := h.svc.Summary()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, counts)
}

// GET /alternatives/:id
func (h *Handler) aggregate(c *gin.Context) {
	term, ok := h.resolveTerm(c)
	if !ok {
		return
	}
	view, err := h.svc.Aggregate(term)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, view)
}

// DELETE /alternatives/:id
func (h *Handler) deleteAll(c *gin.Context) {
	term, ok := h.resolveTerm(c)
	if !ok {
		return
	}
	view, err := h.svc.DeleteAll(term)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, view)
}

// resolveTerm maps the entry id in the path to its term. Alternatives are
// keyed by term text, not by entry id, so deleting an entry does not orphan
// lookups made while it existed.
func (h *Handler) resolveTerm(c *gin.Context) (string, bool) {
	var entry models.EntryModel
	err := h.db.Select("term").First(&entry, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "entry not found")
		} else {
			response.InternalError(c, err)
		}
		return "", false
	}
	return entry.Term, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errEmptyItem):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ai.ErrNotConfigured):
		response.BadRequest(c, "no AI provider configured")
	case errors.Is(err, ai.ErrBadResponse):
		response.UnprocessableEntity(c, "AI returned an unusable response")
	default:
		response.InternalError(c, err)
	}
}
