package opusconv

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func frameStream(frames ...[]byte) []byte {
	var buf bytes.Buffer
	for _, f := range frames {
		var lenBuf [2]byte
		binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(f)))
		buf.Write(lenBuf[:])
		buf.Write(f)
	}
	return buf.Bytes()
}

func TestFrameReaderRoundTrip(t *testing.T) {
	want := [][]byte{
		{0x01},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0x55}, 300),
	}

	r := NewFrameReader(bytes.NewReader(frameStream(want...)))

	var got [][]byte
	for {
		frame, err := r.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		got = append(got, frame)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameReaderEmpty(t *testing.T) {
	r := NewFrameReader(bytes.NewReader(nil))
	if _, err := r.ReadFrame(); err != io.EOF {
		t.Errorf("ReadFrame on empty stream: got %v, want io.EOF", err)
	}
}

func TestFrameReaderTruncatedLength(t *testing.T) {
	r := NewFrameReader(bytes.NewReader([]byte{0x05}))
	if _, err := r.ReadFrame(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadFrame with half a length header: got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestFrameReaderTruncatedBody(t *testing.T) {
	stream := []byte{0x04, 0x00, 0xaa, 0xbb} // claims 4 bytes, carries 2
	r := NewFrameReader(bytes.NewReader(stream))
	if _, err := r.ReadFrame(); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadFrame with short body: got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestFrameReaderZeroLengthFrame(t *testing.T) {
	stream := frameStream([]byte{}, []byte{0x01, 0x02})
	r := NewFrameReader(bytes.NewReader(stream))

	first, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if len(first) != 0 {
		t.Errorf("first frame length = %d, want 0", len(first))
	}

	second, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if diff := cmp.Diff([]byte{0x01, 0x02}, second); diff != "" {
		t.Errorf("second frame mismatch (-want +got):\n%s", diff)
	}
}
