// Package audioconv shells out to FFmpeg for transcodes between container
// formats that libopus cannot produce directly.
package audioconv

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/pkg/errors"
)

// FFmpegTranscoder implements entity.Transcoder.
type FFmpegTranscoder struct{}

// NewFFmpegTranscoder -.
func NewFFmpegTranscoder() *FFmpegTranscoder {
	return &FFmpegTranscoder{}
}

// WAVToFLAC converts the WAV file at src into a FLAC file at dst,
// overwriting dst if it exists.
func (t *FFmpegTranscoder) WAVToFLAC(src, dst string) error {
	err := ffmpeg.Input(src, ffmpeg.KwArgs{"f": "wav"}).
		Output(dst, ffmpeg.KwArgs{"f": "flac"}).
		OverWriteOutput().
		Run()
	if err != nil {
		return errors.Wrap(err, "audioconv - WAVToFLAC - ffmpeg")
	}
	return nil
}
