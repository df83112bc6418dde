package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"audio_recorder/entity"
	"audio_recorder/internal/recording"
	"audio_recorder/pkg/logger"
)

const traceName = "http-v1"

const headerAudioType = "X-Audio-Type"

type audioRoutes struct {
	uc entity.RecordingUsecase
	l  logger.Interface
}

func newAudioRoutes(handler *gin.RouterGroup, uc entity.RecordingUsecase, l logger.Interface) {
	r := &audioRoutes{uc, l}

	handler.POST("/audio", r.receive)
	handler.GET("/hello", r.hello)
}

// @Summary     Submit audio for conversion
// @Description Accepts a raw Opus payload and queues it for background conversion to WAV
// @ID          receive-audio
// @Tags        audio
// @Accept      octet-stream
// @Param       X-Audio-Type header string true "Source of the audio" Enums(user, ai)
// @Success     202
// @Failure     400 {object} response
// @Failure     415 {object} response
// @Failure     503 {object} response
// @Router      /audio [post]
func (r *audioRoutes) receive(c *gin.Context) {
	ctx, span := otel.Tracer(traceName).Start(c.Request.Context(), "receive-audio")
	defer span.End()

	if c.ContentType() != entity.MediaTypeOpus {
		r.l.Warn("http - v1 - receive: invalid content type %q", c.ContentType())
		errorResponse(c, http.StatusUnsupportedMediaType, "invalid content type")
		return
	}

	source, err := entity.ParseSourceKind(c.GetHeader(headerAudioType))
	if err != nil {
		r.l.Warn("http - v1 - receive: %v", err)
		errorResponse(c, http.StatusBadRequest, "missing or invalid "+headerAudioType+" header")
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		r.l.Error(errors.Wrap(err, "http - v1 - receive - ReadAll"))
		errorResponse(c, http.StatusBadRequest, "failed to read body")
		return
	}
	if len(payload) == 0 {
		errorResponse(c, http.StatusBadRequest, "no data received")
		return
	}
	if len(payload) < entity.MinPayloadSize {
		errorResponse(c, http.StatusBadRequest, "invalid data format")
		return
	}

	if err := r.uc.Accept(ctx, payload, source); err != nil {
		if errors.Is(err, recording.ErrQueueFull) {
			errorResponse(c, http.StatusServiceUnavailable, "conversion queue is full")
			return
		}
		r.l.Error(errors.Wrap(err, "http - v1 - receive - Accept"))
		errorResponse(c, http.StatusInternalServerError, "failed to queue audio")
		return
	}

	c.Status(http.StatusAccepted)
}

// @Summary     Liveness greeting
// @ID          hello
// @Tags        audio
// @Produce     json
// @Success     200
// @Router      /hello [get]
func (r *audioRoutes) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}
