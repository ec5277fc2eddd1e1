package completion

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/complete", authMW)
	g.POST("", h.complete)
}

// POST /complete
func (h *Handler) complete(c *gin.Context) {
	var dto completeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	fields, err := h.svc.Complete(c.Request.Context(), dto.Fields, dto.FocusedField)
	if err != nil {
		switch {
		case errors.Is(err, errNoInput):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ai.ErrNotConfigured):
			response.BadRequest(c, "no AI provider configured")
		case errors.Is(err, ai.ErrBadResponse):
			response.UnprocessableEntity(c, "AI returned an unusable response")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, fields)
}
