package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/pkg/response"
	"gorm.io/gorm"
)

var startedAt = time.Now()

const version = "1.0.0"

type Handler struct {
	db     *gorm.DB
	oracle *ai.Service
}

func NewHandler(db *gorm.DB, oracle *ai.Service) *Handler {
	return &Handler{db: db, oracle: oracle}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.ping)
	rg.GET("/info", h.info)
	rg.GET("/health", h.health)
}

// GET /ping
func (h *Handler) ping(c *gin.Context) {
	c.String(200, "pong")
}

// GET /info
func (h *Handler) info(c *gin.Context) {
	response.OK(c, gin.H{
		"name":    "wortkiste",
		"version": version,
	})
}

// GET /health
func (h *Handler) health(c *gin.Context) {
	dbOK := true
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbOK = false
	}

	response.OK(c, gin.H{
		"database":          dbOK,
		"oracle_configured": h.oracle.Configured(),
		"uptime_seconds":    int64(time.Since(startedAt).Seconds()),
	})
}
