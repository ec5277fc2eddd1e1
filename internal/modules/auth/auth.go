package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wortkiste/core/internal/middleware"
	"github.com/wortkiste/core/internal/pkg/response"
	"github.com/wortkiste/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrWrongPassword = errors.New("wrong password")

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type Service struct {
	db            *gorm.DB
	adminPassword string

	// failDelay slows down password guessing. Tests shrink it.
	failDelay time.Duration
}

func NewService(db *gorm.DB, adminPassword string) *Service {
	return &Service{db: db, adminPassword: adminPassword, failDelay: 3 * time.Second}
}

// Login verifies the shared admin password and issues a session. The
// configured password may be a bcrypt hash or plain text; plain text is
// compared in constant time.
func (s *Service) Login(password, ip, ua string) (string, error) {
	if s.adminPassword == "" || !s.verify(password) {
		time.Sleep(s.failDelay)
		return "", ErrWrongPassword
	}
	token, _, err := session.Issue(s.db, ip, ua, session.DefaultTTL)
	return token, err
}

func (s *Service) verify(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}

func (s *Service) Logout(sessionID string) error {
	return session.Revoke(s.db, sessionID)
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/login", h.login)
	a.POST("/logout", authMW, h.logout)
	a.GET("/check", middleware.OptionalAuth(h.svc.db), h.check)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "password is required")
		return
	}

	token, err := h.svc.Login(dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			response.Unauthorized(c)
		} else {
			response.InternalError(c, err)
		}
		return
	}

	c.SetCookie(middleware.CookieName, token, int(session.DefaultTTL.Seconds()), "/", "", false, true)
	response.OK(c, loginResponse{Token: token})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	sid := middleware.CurrentSessionID(c)
	if sid != "" {
		if err := h.svc.Logout(sid); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			response.InternalError(c, err)
			return
		}
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	response.OK(c, gin.H{"ok": true})
}

// GET /auth/check
func (h *Handler) check(c *gin.Context) {
	response.OK(c, gin.H{"authenticated": middleware.IsAuthenticated(c)})
}
