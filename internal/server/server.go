package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"audio_recorder/config"
	v1 "audio_recorder/internal/controller/http/v1"
	"audio_recorder/internal/recording"
	"audio_recorder/internal/storage/s3repo"
	ttrace "audio_recorder/internal/telemetry/trace"
	"audio_recorder/pkg/archive"
	"audio_recorder/pkg/audioconv"
	"audio_recorder/pkg/httpserver"
	"audio_recorder/pkg/logger"
	"audio_recorder/pkg/opusconv"
)

const name = "audio-recorder"

// drainTimeout bounds how long shutdown waits for the worker to finish
// buffered conversions.
const drainTimeout = 30 * time.Second

// NewServer ...
func NewServer(cfg *config.Config) *Server {
	srv := &Server{}

	if cfg.OTEL.Enabled {
		srv.InitGlobalProvider(name, cfg.OTEL.OTLPEndpoint)
	}

	return srv
}

type Server struct {
	traceProviderCloseFn []ttrace.CloseFunc
}

// Run wires the ingestion pipeline and blocks until SIGINT/SIGTERM or a
// server error. Exactly two logical tasks run here: the HTTP server and
// one conversion worker goroutine, joined by the job queue.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	l := logger.New(cfg.Log.Level)
	l.Info("starting %s %s", cfg.App.Name, cfg.App.Version)

	queue := recording.NewJobQueue(cfg.Recording.QueueSize)
	converter := opusconv.NewWAVConverter(cfg.Recording.SampleRate, cfg.Recording.Channels, l)

	uc := recording.NewUsecase(cfg.Recording, queue, converter, l)
	if cfg.Storage.Enabled {
		uc.SetBlobStorage(s3repo.NewS3Repository(cfg.Storage), cfg.Storage.Bucket)
		l.Info("mirroring recordings to bucket %s at %s", cfg.Storage.Bucket, cfg.Storage.Endpoint)
	}
	if cfg.Recording.ArchiveFLAC {
		uc.SetTranscoder(audioconv.NewFFmpegTranscoder())
		l.Info("archival FLAC copies enabled")
	}

	// Conversion worker
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		uc.Run()
	}()

	// HTTP server
	handler := gin.New()
	v1.NewRouter(handler, l, uc, archive.NewTarGzBundler(), cfg.Recording.Dir)
	httpServer := httpserver.New(s.cors().Handler(handler), httpserver.Port(cfg.Server.Port))

	l.Info("server serving on port %s", cfg.Server.Port)

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var err error
	select {
	case sig := <-interrupt:
		l.Info("server - Run - signal: " + sig.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("server - Run - httpServer.Notify: %w", err))
	}

	// Shutdown: stop accepting uploads, then let the worker drain.
	if shutdownErr := httpServer.Shutdown(); shutdownErr != nil {
		l.Error(fmt.Errorf("server - Run - httpServer.Shutdown: %w", shutdownErr))
	}

	queue.Close()
	select {
	case <-workerDone:
		l.Info("worker drained cleanly")
	case <-time.After(drainTimeout):
		l.Warn("worker did not drain within %s, abandoning %d queued jobs", drainTimeout, queue.Len())
	}

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, closeFn := range s.traceProviderCloseFn {
		if closeErr := closeFn(ctxShutDown); closeErr != nil {
			l.Error(fmt.Errorf("server - Run - trace provider close: %w", closeErr))
		}
	}

	l.Info("server exited properly")

	return err
}

func (s *Server) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"POST", "GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "X-Audio-Type", "X-Request-ID"},
		MaxAge:           60, // 1 minute
		AllowCredentials: false,
	})
}
