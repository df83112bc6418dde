package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"audio_recorder/entity"
	"audio_recorder/pkg/logger"
)

type recordingsRoutes struct {
	bundler entity.Bundler
	dir     string
	l       logger.Interface
}

func newRecordingsRoutes(handler *gin.RouterGroup, bundler entity.Bundler, dir string, l logger.Interface) {
	r := &recordingsRoutes{bundler, dir, l}

	handler.GET("/recordings", r.bundle)
}

// @Summary     Download all recordings
// @Description Streams the recordings directory as a tar.gz archive
// @ID          bundle-recordings
// @Tags        recordings
// @Produce     application/gzip
// @Success     200
// @Failure     404 {object} response
// @Failure     500 {object} response
// @Router      /recordings [get]
func (r *recordingsRoutes) bundle(c *gin.Context) {
	ctx, span := otel.Tracer(traceName).Start(c.Request.Context(), "bundle-recordings")
	defer span.End()

	if _, err := os.Stat(r.dir); err != nil {
		if os.IsNotExist(err) {
			errorResponse(c, http.StatusNotFound, "no recordings yet")
			return
		}
		r.l.Error(errors.Wrap(err, "http - v1 - bundle - Stat"))
		errorResponse(c, http.StatusInternalServerError, "failed to read recordings")
		return
	}

	c.Header("Content-Type", "application/gzip")
	c.Header("Content-Disposition", `attachment; filename="recordings.tar.gz"`)
	c.Status(http.StatusOK)

	if err := r.bundler.BundleDir(ctx, r.dir, c.Writer); err != nil {
		// Headers are gone; all we can do is cut the stream and log.
		r.l.Error(errors.Wrap(err, "http - v1 - bundle"))
		c.Abort()
	}
}
