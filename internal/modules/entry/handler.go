package entry

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wortkiste/core/internal/modules/morphology"
	"github.com/wortkiste/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/entries")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /entries?q=...
func (h *Handler) list(c *gin.Context) {
	entries, err := h.svc.List(c.Query("q"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toResponse(&entries[i]))
	}
	response.OK(c, out)
}

// GET /entries/:id
func (h *Handler) get(c *gin.Context) {
	e, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, toResponse(e))
}

// POST /entries
func (h *Handler) create(c *gin.Context) {
	var dto entryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "term and definition are required")
		return
	}
	e, err := h.svc.Create(&dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, toResponse(e))
}

// PUT /entries/:id
func (h *Handler) update(c *gin.Context) {
	var dto entryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "term and definition are required")
		return
	}
	e, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, toResponse(e))
}

// DELETE /entries/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.Is(err, ErrDuplicateTerm):
		response.Conflict(c, err.Error())
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, morphology.ErrArticleRequired),
		errors.Is(err, morphology.ErrArticleNotAllowed):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
