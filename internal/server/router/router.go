package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/server/handlers"
)

// Handlers bundles every HTTP adapter the router mounts.
type Handlers struct {
	Rabbits   *handlers.RabbitHandler
	Breeding  *handlers.BreedingHandler
	Offspring *handlers.OffspringHandler
	Expenses  *handlers.ExpenseHandler
	Butcher   *handlers.ButcherHandler
	Stats     *handlers.StatsHandler
	Upload    *handlers.UploadHandler
	Export    *handlers.ExportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, uploadsDir string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/rabbits", h.Rabbits.List)
		api.POST("/rabbits", h.Rabbits.Create)
		api.GET("/rabbits/:id", h.Rabbits.Get)
		api.PUT("/rabbits/:id", h.Rabbits.Update)
		api.DELETE("/rabbits/:id", h.Rabbits.Delete)

		api.GET("/breeding-records", h.Breeding.List)
		api.POST("/breeding-records", h.Breeding.Create)
		api.PUT("/breeding-records/:id", h.Breeding.Update)
		api.DELETE("/breeding-records/:id", h.Breeding.Delete)

		api.GET("/offspring", h.Offspring.List)
		api.POST("/offspring", h.Offspring.Create)
		api.PUT("/offspring/:id", h.Offspring.Update)
		api.DELETE("/offspring/:id", h.Offspring.Delete)

		api.GET("/expenses", h.Expenses.List)
		api.GET("/expenses/summary", h.Expenses.Summary)
		api.POST("/expenses", h.Expenses.Create)
		api.PUT("/expenses/:id", h.Expenses.Update)
		api.DELETE("/expenses/:id", h.Expenses.Delete)

		api.GET("/butcher-records", h.Butcher.List)
		api.POST("/butcher-records", h.Butcher.Create)
		api.PUT("/butcher-records/:id", h.Butcher.Update)
		api.DELETE("/butcher-records/:id", h.Butcher.Delete)

		api.GET("/stats", h.Stats.Stats)
		api.GET("/notifications", h.Stats.Notifications)
		api.GET("/dashboard", h.Stats.Dashboard)

		api.POST("/upload-photo", h.Upload.UploadPhoto)
		api.POST("/export", h.Export.Export)
	}

	r.Static("/uploads", uploadsDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
