package opusconv

import (
	"bytes"
	"context"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	opus "gopkg.in/hraban/opus.v2"

	"audio_recorder/pkg/logger"
)

const (
	// DefaultSampleRate and DefaultChannels match the upstream capture
	// pipeline: 16 kHz mono, 20 ms frames of 320 samples.
	DefaultSampleRate = 16000
	DefaultChannels   = 1

	// maxFrameSamples is the largest Opus frame (120 ms at 48 kHz) per
	// channel. The decode buffer is sized for it regardless of the
	// configured rate.
	maxFrameSamples = 5760

	wavBitDepth = 16
	wavPCM      = 1
)

var (
	ErrEmptyPayload = errors.New("empty payload")
	ErrNoFrames     = errors.New("no decodable opus frames in payload")
)

// WAVConverter decodes length-prefixed Opus frames and writes a 16-bit PCM
// WAV container. It implements entity.AudioConverter.
type WAVConverter struct {
	sampleRate int
	channels   int
	l          logger.Interface
}

// NewWAVConverter -.
func NewWAVConverter(sampleRate, channels int, l logger.Interface) *WAVConverter {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if channels <= 0 {
		channels = DefaultChannels
	}
	return &WAVConverter{sampleRate: sampleRate, channels: channels, l: l}
}

// Convert decodes payload and writes the WAV container to dst. Frames that
// fail to decode are skipped; if no frame decodes at all, nothing useful
// was written and ErrNoFrames is returned so the caller can discard dst.
func (c *WAVConverter) Convert(ctx context.Context, payload []byte, dst io.WriteSeeker) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}

	dec, err := opus.NewDecoder(c.sampleRate, c.channels)
	if err != nil {
		return errors.Wrap(err, "opusconv - Convert - opus.NewDecoder")
	}

	enc := wav.NewEncoder(dst, c.sampleRate, wavBitDepth, c.channels, wavPCM)
	format := &audio.Format{
		NumChannels: c.channels,
		SampleRate:  c.sampleRate,
	}

	frames := NewFrameReader(bytes.NewReader(payload))
	pcm := make([]int16, maxFrameSamples*c.channels)

	frameIndex := 0
	decoded := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := frames.ReadFrame()
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			// Truncated trailing frame, everything before it is kept.
			c.l.Debug("opusconv: truncated frame %d, stopping", frameIndex)
			break
		}
		if err != nil {
			return errors.Wrap(err, "opusconv - Convert - ReadFrame")
		}
		frameIndex++

		n, err := dec.Decode(frame, pcm)
		if err != nil {
			c.l.Debug("opusconv: skipping undecodable frame %d: %v", frameIndex, err)
			continue
		}

		samples := pcm[:n*c.channels]
		buf := &audio.IntBuffer{
			Format:         format,
			SourceBitDepth: wavBitDepth,
			Data:           make([]int, len(samples)),
		}
		for i, s := range samples {
			buf.Data[i] = int(s)
		}
		if err := enc.Write(buf); err != nil {
			return errors.Wrap(err, "opusconv - Convert - enc.Write")
		}
		decoded++
	}

	if decoded == 0 {
		return ErrNoFrames
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "opusconv - Convert - enc.Close")
	}
	return nil
}
