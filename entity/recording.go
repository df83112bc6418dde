package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MediaTypeOpus is the only content type accepted by the ingestion endpoint.
const MediaTypeOpus = "audio/opus"

// MinPayloadSize is the smallest payload that can hold a single frame
// length header.
const MinPayloadSize = 2

var ErrInvalidSourceKind = errors.New("invalid source kind")

// SourceKind classifies the origin of an audio stream. It drives the
// output filename prefix.
type SourceKind string

const (
	SourceUser SourceKind = "user"
	SourceAI   SourceKind = "ai"
)

// ParseSourceKind parses the X-Audio-Type header value. Matching is
// case-insensitive; unknown values are rejected.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(strings.ToLower(strings.TrimSpace(s))) {
	case SourceUser:
		return SourceUser, nil
	case SourceAI:
		return SourceAI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceKind, s)
	}
}

// Prefix returns the filename prefix for recordings of this kind.
func (k SourceKind) Prefix() string {
	return string(k)
}

// RecordingJob is the unit of work handed from the HTTP handler to the
// conversion worker. It is immutable once constructed: the queue owns it
// until dequeue, then the worker owns it exclusively.
type RecordingJob struct {
	Payload    []byte
	Source     SourceKind
	ReceivedAt time.Time
}

// RecordingUsecase is the contract the HTTP controller depends on.
type RecordingUsecase interface {
	Accept(ctx context.Context, payload []byte, source SourceKind) error
}
