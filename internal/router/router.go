package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/medlight/clinic-api/internal/handler"
	authHandler "github.com/medlight/clinic-api/internal/handler/auth"
	"github.com/medlight/clinic-api/internal/middleware"
)

// Handler is a resource handler that wires its routes under the API
// group, receiving the session gate for its mutating endpoints.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, gate gin.HandlerFunc)
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORS          middleware.CORSConfig
	MetricsPrefix string
}

type Router struct {
	engine   *gin.Engine
	config   Config
	sessions *middleware.SessionMiddleware
	authH    *authHandler.Handler
	resource []Handler
	metrics  *routerMetrics
}

func New(config Config, sessions *middleware.SessionMiddleware, authH *authHandler.Handler, resource ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:   gin.New(),
		config:   config,
		sessions: sessions,
		authH:    authH,
		resource: resource,
		metrics:  initRouterMetrics(config.MetricsPrefix),
	}
}

func (r *Router) Setup() {
	r.engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(r.config.CORS),
		r.observe(),
	)
	if r.config.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  r.config.RateLimit,
			Burst: r.config.RateBurst,
		})
		r.engine.Use(limiter.RateLimit())
	}

	r.engine.GET("/health", handler.Health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group(handler.APIPrefix)
	gate := r.sessions.RequireSession()

	r.authH.RegisterRoutes(api)
	for _, h := range r.resource {
		h.RegisterRoutes(api, gate)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}
