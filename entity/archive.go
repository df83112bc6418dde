package entity

import (
	"context"
	"io"
)

// Bundler packs a directory of recordings into a single downloadable
// archive stream.
type Bundler interface {
	BundleDir(ctx context.Context, dir string, w io.Writer) error
}
