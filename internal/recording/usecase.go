package recording

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"audio_recorder/config"
	"audio_recorder/entity"
	"audio_recorder/pkg/logger"
)

const traceName = "recording-usecase"

// Usecase accepts validated payloads on the request path and converts them
// to WAV files on the worker side. Accept and ProcessJob never run on the
// same goroutine; the queue is the only thing they share.
type Usecase struct {
	cfg       config.Recording
	queue     *JobQueue
	converter entity.AudioConverter
	l         logger.Interface

	storage    entity.BlobStorage
	bucket     string
	transcoder entity.Transcoder
}

var _ entity.RecordingUsecase = (*Usecase)(nil)

// NewUsecase -.
func NewUsecase(cfg config.Recording, queue *JobQueue, converter entity.AudioConverter, l logger.Interface) *Usecase {
	return &Usecase{cfg: cfg, queue: queue, converter: converter, l: l}
}

// SetBlobStorage enables mirroring of finished recordings into bucket.
func (u *Usecase) SetBlobStorage(storage entity.BlobStorage, bucket string) {
	u.storage = storage
	u.bucket = bucket
}

// SetTranscoder enables the archival FLAC copy next to each WAV.
func (u *Usecase) SetTranscoder(t entity.Transcoder) {
	u.transcoder = t
}

// Accept stamps the payload, enqueues it, and returns without waiting for
// conversion. ErrQueueFull and ErrQueueClosed are the only failure modes.
func (u *Usecase) Accept(ctx context.Context, payload []byte, source entity.SourceKind) error {
	_, span := otel.Tracer(traceName).Start(ctx, "Accept")
	defer span.End()

	span.SetAttributes(
		attribute.String("source", source.Prefix()),
		attribute.Int("payload_bytes", len(payload)),
	)

	job := entity.RecordingJob{
		Payload:    payload,
		Source:     source,
		ReceivedAt: time.Now(),
	}

	if err := u.queue.Enqueue(job); err != nil {
		jobsRejected.Inc()
		return err
	}

	jobsAccepted.WithLabelValues(source.Prefix()).Inc()
	queueDepth.Set(float64(u.queue.Len()))
	u.l.Debug("recording - Accept - enqueued %s payload, %d bytes", source.Prefix(), len(payload))
	return nil
}

// Run is the conversion worker loop. It drains the queue in FIFO order,
// one job at a time, and returns once the queue is closed and empty.
// A failed job is logged and discarded; the loop never stops for it.
func (u *Usecase) Run() {
	u.l.Info("conversion worker started")

	for job := range u.queue.Jobs() {
		queueDepth.Set(float64(u.queue.Len()))

		if err := u.ProcessJob(context.Background(), job); err != nil {
			u.l.Error(fmt.Errorf("recording - Run - %s job received at %s: %w",
				job.Source.Prefix(), job.ReceivedAt.Format(time.RFC3339Nano), err))
		}
	}

	u.l.Info("conversion worker stopped")
}

// ProcessJob converts one payload to a WAV file under the recordings
// directory. The conversion writes to a hidden temp file and renames on
// success, so a partial file is never visible under the final name.
func (u *Usecase) ProcessJob(ctx context.Context, job entity.RecordingJob) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "ProcessJob")
	defer span.End()

	span.SetAttributes(
		attribute.String("source", job.Source.Prefix()),
		attribute.Int("payload_bytes", len(job.Payload)),
	)

	start := time.Now()

	if err := os.MkdirAll(u.cfg.Dir, 0o755); err != nil {
		conversions.WithLabelValues("io_error").Inc()
		return errors.Wrap(err, "recording - ProcessJob - MkdirAll")
	}

	tmp, err := os.CreateTemp(u.cfg.Dir, ".convert_*.wav")
	if err != nil {
		conversions.WithLabelValues("io_error").Inc()
		return errors.Wrap(err, "recording - ProcessJob - CreateTemp")
	}

	if err := u.converter.Convert(ctx, job.Payload, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		conversions.WithLabelValues("decode_error").Inc()
		return errors.Wrap(err, "recording - ProcessJob - Convert")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		conversions.WithLabelValues("io_error").Inc()
		return errors.Wrap(err, "recording - ProcessJob - Close")
	}

	path := u.outputPath(job)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		conversions.WithLabelValues("io_error").Inc()
		return errors.Wrap(err, "recording - ProcessJob - Rename")
	}

	conversions.WithLabelValues("success").Inc()
	conversionDuration.Observe(time.Since(start).Seconds())
	u.l.Info("recording - ProcessJob - saved %s", filepath.Base(path))

	u.mirror(ctx, path)
	u.archiveFLAC(path)

	return nil
}

// outputPath computes <prefix>_<YYYYMMDD_HHMMSS>_<nanoseconds>.wav from the
// enqueue timestamp in UTC. Nanoseconds keep same-second arrivals apart; a
// numeric suffix covers the residual collision case.
func (u *Usecase) outputPath(job entity.RecordingJob) string {
	ts := job.ReceivedAt.UTC()
	base := fmt.Sprintf("%s_%s_%09d", job.Source.Prefix(), ts.Format("20060102_150405"), ts.Nanosecond())

	path := filepath.Join(u.cfg.Dir, base+".wav")
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(u.cfg.Dir, fmt.Sprintf("%s_%d.wav", base, n))
	}
}

// mirror uploads the finished WAV to blob storage, if configured. Failures
// are logged only; the local file is the source of truth.
func (u *Usecase) mirror(ctx context.Context, path string) {
	if u.storage == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		u.l.Error(errors.Wrap(err, "recording - mirror - Open"))
		return
	}
	defer f.Close()

	if err := u.storage.UploadObject(ctx, u.bucket, filepath.Base(path), f); err != nil {
		u.l.Error(errors.Wrap(err, "recording - mirror - UploadObject"))
	}
}

// archiveFLAC writes a FLAC copy next to the WAV, if configured. Failures
// are logged only.
func (u *Usecase) archiveFLAC(path string) {
	if u.transcoder == nil {
		return
	}

	dst := strings.TrimSuffix(path, ".wav") + ".flac"
	if err := u.transcoder.WAVToFLAC(path, dst); err != nil {
		u.l.Error(errors.Wrap(err, "recording - archiveFLAC"))
	}
}
