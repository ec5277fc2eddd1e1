package review

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
	g := rg.Group("/review", authMW)
	g.POST("", h.review)
}

// POST /review
func (h *Handler) review(c *gin.Context) {
	var dto reviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	fields, err := h.svc.Review(c.Request.Context(), dto.Fields)
	if err != nil {
		switch {
		case errors.Is(err, errNoFields):
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
	response.OK(c, gin.H{"fields": fields})
}
