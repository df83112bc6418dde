package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBundleDir(t *testing.T) {
	dir := t.TempDir()

	files := map[string][]byte{
		"ai_20260102_030405_000000000.wav":   []byte("ai audio"),
		"user_20260102_030406_000000000.wav": []byte("user audio"),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	// In-flight temp files must not leak into bundles.
	if err := os.WriteFile(filepath.Join(dir, ".convert_123.wav"), []byte("partial"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTarGzBundler().BundleDir(context.Background(), dir, &buf); err != nil {
		t.Fatalf("BundleDir: %v", err)
	}

	gr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}

	got := map[string][]byte{}
	var order []string
	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("tar.Next: %v", err)
		}
		body, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		got[hdr.Name] = body
		order = append(order, hdr.Name)
	}

	if diff := cmp.Diff(files, got); diff != "" {
		t.Errorf("bundle contents mismatch (-want +got):\n%s", diff)
	}

	wantOrder := []string{
		"ai_20260102_030405_000000000.wav",
		"user_20260102_030406_000000000.wav",
	}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Errorf("bundle order mismatch (-want +got):\n%s", diff)
	}
}

func TestBundleDirEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTarGzBundler().BundleDir(context.Background(), t.TempDir(), &buf); err != nil {
		t.Fatalf("BundleDir: %v", err)
	}

	gr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	tr := tar.NewReader(gr)
	if _, err := tr.Next(); err != io.EOF {
		t.Errorf("expected empty archive, got %v", err)
	}
}

func TestBundleDirMissing(t *testing.T) {
	var buf bytes.Buffer
	err := NewTarGzBundler().BundleDir(context.Background(), filepath.Join(t.TempDir(), "nope"), &buf)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
