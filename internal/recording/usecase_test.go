package recording

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"audio_recorder/config"
	"audio_recorder/entity"
	"audio_recorder/pkg/logger"
)

var errBadPayload = errors.New("bad payload")

// stubConverter writes the payload straight through, or fails for payloads
// equal to "bad".
type stubConverter struct{}

func (s *stubConverter) Convert(_ context.Context, payload []byte, dst io.WriteSeeker) error {
	if bytes.Equal(payload, []byte("bad")) {
		return errBadPayload
	}
	_, err := dst.Write(payload)
	return err
}

func newTestUsecase(t *testing.T, queueSize int) (*Usecase, *JobQueue, string) {
	t.Helper()

	dir := t.TempDir()
	q := NewJobQueue(queueSize)
	cfg := config.Recording{Dir: dir, QueueSize: queueSize}
	u := NewUsecase(cfg, q, &stubConverter{}, logger.New("error"))
	return u, q, dir
}

func listVisible(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.Name()[0] == '.' {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

func TestProcessJobNamingContract(t *testing.T) {
	u, _, dir := newTestUsecase(t, 1)

	job := entity.RecordingJob{
		Payload:    []byte("pcm"),
		Source:     entity.SourceUser,
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 123, time.UTC),
	}
	if err := u.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob: %v", err)
	}

	want := []string{"user_20260102_030405_000000123.wav"}
	if diff := cmp.Diff(want, listVisible(t, dir)); diff != "" {
		t.Errorf("recordings dir mismatch (-want +got):\n%s", diff)
	}

	content, err := os.ReadFile(filepath.Join(dir, want[0]))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff([]byte("pcm"), content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessJobAIPrefix(t *testing.T) {
	u, _, dir := newTestUsecase(t, 1)

	job := entity.RecordingJob{
		Payload:    []byte("x"),
		Source:     entity.SourceAI,
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := u.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob: %v", err)
	}

	want := []string{"ai_20260102_030405_000000000.wav"}
	if diff := cmp.Diff(want, listVisible(t, dir)); diff != "" {
		t.Errorf("recordings dir mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessJobCollisionSuffix(t *testing.T) {
	u, _, dir := newTestUsecase(t, 1)

	job := entity.RecordingJob{
		Payload:    []byte("x"),
		Source:     entity.SourceUser,
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 7, time.UTC),
	}
	for i := 0; i < 3; i++ {
		if err := u.ProcessJob(context.Background(), job); err != nil {
			t.Fatalf("ProcessJob #%d: %v", i, err)
		}
	}

	want := []string{
		"user_20260102_030405_000000007.wav",
		"user_20260102_030405_000000007_1.wav",
		"user_20260102_030405_000000007_2.wav",
	}
	if diff := cmp.Diff(want, listVisible(t, dir)); diff != "" {
		t.Errorf("recordings dir mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessJobFailureWritesNothing(t *testing.T) {
	u, _, dir := newTestUsecase(t, 1)

	job := entity.RecordingJob{
		Payload:    []byte("bad"),
		Source:     entity.SourceUser,
		ReceivedAt: time.Now(),
	}
	err := u.ProcessJob(context.Background(), job)
	if !errors.Is(err, errBadPayload) {
		t.Fatalf("ProcessJob: got %v, want errBadPayload", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("ReadDir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty dir after failed conversion, found %d entries", len(entries))
	}
}

func TestRunProcessesFIFOAndSurvivesFailures(t *testing.T) {
	u, q, dir := newTestUsecase(t, 8)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	payloads := [][]byte{[]byte("one"), []byte("bad"), []byte("two"), []byte("three")}
	for i, p := range payloads {
		job := entity.RecordingJob{
			Payload:    p,
			Source:     entity.SourceUser,
			ReceivedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := q.Enqueue(job); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Close()

	// With the queue closed, Run drains everything and returns.
	u.Run()

	names := listVisible(t, dir)
	want := []string{
		"user_20260102_030405_000000000.wav",
		"user_20260102_030407_000000000.wav",
		"user_20260102_030408_000000000.wav",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("recordings dir mismatch (-want +got):\n%s", diff)
	}

	// Timestamps in the names are monotonically increasing, so sorted
	// directory order is enqueue order.
	var contents [][]byte
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		contents = append(contents, b)
	}
	wantContents := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	if diff := cmp.Diff(wantContents, contents); diff != "" {
		t.Errorf("content order mismatch (-want +got):\n%s", diff)
	}
}

func TestAcceptEnqueuesExactlyOneJob(t *testing.T) {
	u, q, _ := newTestUsecase(t, 2)

	payload := []byte{0x02, 0x00, 0xaa, 0xbb}
	if err := u.Accept(context.Background(), payload, entity.SourceAI); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	if q.Len() != 1 {
		t.Fatalf("queue length = %d, want 1", q.Len())
	}

	job := <-q.Jobs()
	if diff := cmp.Diff(payload, job.Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	if job.Source != entity.SourceAI {
		t.Errorf("source = %q, want %q", job.Source, entity.SourceAI)
	}
	if job.ReceivedAt.IsZero() {
		t.Error("ReceivedAt not stamped")
	}
}

func TestAcceptQueueFull(t *testing.T) {
	u, _, _ := newTestUsecase(t, 1)

	ctx := context.Background()
	if err := u.Accept(ctx, []byte{1}, entity.SourceUser); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if err := u.Accept(ctx, []byte{2}, entity.SourceUser); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Accept on full queue: got %v, want ErrQueueFull", err)
	}
}
