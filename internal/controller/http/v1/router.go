// Package v1 implements routing paths for the audio recorder API.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"audio_recorder/entity"
	"audio_recorder/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, uc entity.RecordingUsecase, bundler entity.Bundler, recordingsDir string) {
	// Middleware
	handler.Use(gin.Recovery())
	handler.Use(requestID())

	// Swagger
	handler.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Probes and metrics
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routes
	h := handler.Group("/api")
	{
		newAudioRoutes(h, uc, l)
		newRecordingsRoutes(h, bundler, recordingsDir, l)
	}
}

// requestID tags every request so asynchronous worker logs can be tied
// back to the upload that produced them.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Next()
	}
}
