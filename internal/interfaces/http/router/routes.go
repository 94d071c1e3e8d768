package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (r *Router) setupRoutes() {
	// system endpoints
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/v1")
	{
		v1.POST("/decisions", r.handlers.Decision.Decide)

		styles := v1.Group("/styles")
		{
			styles.GET("", r.handlers.Style.List)
			styles.POST("/uploads", r.handlers.Style.Upload)
			styles.GET("/recommendations", r.handlers.Style.Recommendations)
			styles.POST("/synthesize", r.handlers.Style.Synthesize)
			styles.POST("/combine", r.handlers.Style.Combine)
			styles.GET("/progress", r.handlers.Style.Progress)
			styles.GET("/insights", r.handlers.Style.Insights)
			styles.PATCH("/:id", r.handlers.Style.Adjust)
			styles.POST("/:id/outcomes", r.handlers.Style.Outcome)
		}

		assets := v1.Group("/assets")
		{
			assets.POST("/render", r.handlers.Asset.Render)
			assets.GET("", r.handlers.Asset.List)
			assets.GET("/:id", r.handlers.Asset.Get)
		}
	}
}
