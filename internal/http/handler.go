package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/festival-audit/internal/http/middleware"
	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/service"
	"github.com/nurpe/festival-audit/internal/shell"
)

type Handler struct {
	app *service.AppService
	log zerolog.Logger
}

func NewHandler(app *service.AppService, log zerolog.Logger) *Handler {
	return &Handler{app: app, log: log}
}

func (h *Handler) Register(router *gin.Engine, sessionMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)

	pages := router.Group("/")
	pages.Use(sessionMiddleware)
	pages.GET("/", h.page)
	pages.POST("/login", h.formAction(func(*gin.Context) (shell.Action, error) { return shell.Login(), nil }))
	pages.POST("/logout", h.formAction(func(*gin.Context) (shell.Action, error) { return shell.Logout(), nil }))
	pages.POST("/tabs/:tab", h.formAction(tabFromPath))
	pages.POST("/dashboard/festival", h.formAction(func(c *gin.Context) (shell.Action, error) {
		return shell.SelectDashboardFestival(model.Festival(c.PostForm("festival"))), nil
	}))
	pages.POST("/dashboard/breakdown", h.formAction(func(*gin.Context) (shell.Action, error) { return shell.OpenBreakdown(), nil }))
	pages.POST("/dashboard/area", h.formAction(func(c *gin.Context) (shell.Action, error) {
		return shell.SelectArea(c.PostForm("area")), nil
	}))
	pages.POST("/dashboard/back", h.formAction(func(*gin.Context) (shell.Action, error) { return shell.Back(), nil }))
	pages.POST("/audit/festival", h.formAction(func(c *gin.Context) (shell.Action, error) {
		return shell.SelectAuditFestival(model.Festival(c.PostForm("festival"))), nil
	}))
	pages.POST("/audit/submit", h.formAction(func(*gin.Context) (shell.Action, error) { return shell.SubmitAudit(), nil }))
	pages.GET("/exports/audits.pdf", h.export(service.FormatPDF))
	pages.GET("/exports/dashboard.xlsx", h.export(service.FormatXLSX))

	api := router.Group("/api/v1")
	api.Use(sessionMiddleware)
	api.GET("/state", h.getState)
	api.POST("/actions", h.postAction)
	api.GET("/areas/:area/referrals", h.listReferrals)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) page(c *gin.Context) {
	id, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := h.app.Snapshot(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "page", snap)
}

// formAction applies the parsed action and sends the browser back to the
// page, post/redirect/get style.
func (h *Handler) formAction(parse func(*gin.Context) (shell.Action, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.session(c)
		if !ok {
			return
		}
		action, err := parse(c)
		if err != nil {
			h.handleError(c, err)
			return
		}
		if _, err := h.app.Dispatch(c.Request.Context(), id, action); err != nil {
			h.handleError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func tabFromPath(c *gin.Context) (shell.Action, error) {
	return service.ParseAction(service.ActionInput{Type: string(shell.ActionSelectTab), Tab: c.Param("tab")})
}

func (h *Handler) getState(c *gin.Context) {
	id, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := h.app.Snapshot(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) postAction(c *gin.Context) {
	id, ok := h.session(c)
	if !ok {
		return
	}

	var req service.ActionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action, err := service.ParseAction(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	snap, err := h.app.Dispatch(c.Request.Context(), id, action)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) listReferrals(c *gin.Context) {
	area := strings.TrimSpace(c.Param("area"))
	c.JSON(http.StatusOK, gin.H{
		"area":          area,
		"organizations": h.app.Repository().ListReferrals(area),
	})
}

func (h *Handler) export(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.session(c)
		if !ok {
			return
		}
		result, err := h.app.ExportForSession(id, format)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
		c.Data(http.StatusOK, result.ContentType, result.Content)
	}
}

func (h *Handler) session(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.MustSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
