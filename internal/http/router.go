package http

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/festival-audit/internal/http/middleware"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type RouterOptions struct {
	Environment    string
	AllowedOrigins []string
}

func NewRouter(handler *Handler, sessionMiddleware gin.HandlerFunc, log zerolog.Logger, opts RouterOptions) *gin.Engine {
	if opts.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	}
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")))

	handler.Register(router, sessionMiddleware)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	allowAll := false
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		// Reflect the caller's origin; a literal "*" is not allowed with credentials.
		cfg.AllowOriginFunc = func(string) bool { return true }
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

var tabGlyphs = map[string]string{
	"bar-chart": "▥",
	"plus":      "+",
	"list":      "☰",
	"user":      "◉",
}

var templateFuncs = template.FuncMap{
	"glyph": func(icon string) string {
		if g, ok := tabGlyphs[icon]; ok {
			return g
		}
		return "•"
	},
}
