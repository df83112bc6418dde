// Package archive bundles recording files into tar.gz streams.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

const traceName = "archive"

// TarGzBundler streams a flat directory of finished recordings as a
// tar.gz archive. It implements entity.Bundler.
type TarGzBundler struct{}

// NewTarGzBundler -.
func NewTarGzBundler() *TarGzBundler {
	return &TarGzBundler{}
}

// BundleDir writes every regular, non-hidden file directly under dir into
// a tar.gz stream on w, in lexical order. Hidden files are skipped so
// in-flight temp files never leak into a bundle.
func (b *TarGzBundler) BundleDir(ctx context.Context, dir string, w io.Writer) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "BundleDir")
	defer span.End()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "archive - BundleDir - ReadDir")
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	gw := gzip.NewWriter(w)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	defer tw.Close()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return errors.Wrap(err, "archive - BundleDir - Info")
		}

		hdr := &tar.Header{
			Name:    entry.Name(),
			Mode:    int64(0600),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return errors.Wrap(err, "archive - BundleDir - WriteHeader")
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrap(err, "archive - BundleDir - Open")
		}
		if _, err := io.Copy(tw, f); err != nil {
			f.Close()
			return errors.Wrap(err, "archive - BundleDir - Copy")
		}
		f.Close()
	}

	if err := tw.Close(); err != nil {
		return errors.Wrap(err, "archive - BundleDir - tar Close")
	}
	return errors.Wrap(gw.Close(), "archive - BundleDir - gzip Close")
}
