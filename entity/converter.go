package entity

import (
	"context"
	"io"
)

// AudioConverter decodes a compressed payload and writes the uncompressed
// result to dst. The worker owns file handling around it (temp file,
// rename), the converter only produces the container bytes.
type AudioConverter interface {
	Convert(ctx context.Context, payload []byte, dst io.WriteSeeker) error
}

// Transcoder converts a finished WAV file into an archival format.
type Transcoder interface {
	WAVToFLAC(src, dst string) error
}
