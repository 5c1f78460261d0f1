package binary

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/tagscan/internal/types"
)

func TestSafeReader_Bytes_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(data, "test.mp3")

	buf, err := sr.Bytes(0, 2, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_Bytes_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(data, "test.mp3")

	_, err := sr.Bytes(10, 2, "out of bounds read")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var oob *types.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *types.OutOfBoundsError, got %T", err)
	}

	// Check error message contains useful info
	errMsg := err.Error()
	if !strings.Contains(errMsg, "test.mp3") {
		t.Errorf("error should contain filename: %v", errMsg)
	}
	if !strings.Contains(errMsg, "out of bounds read") {
		t.Errorf("error should contain context: %v", errMsg)
	}
}

func TestSafeReader_Bytes_Edges(t *testing.T) {
	data := make([]byte, 8)
	sr := NewSafeReader(data, "edges")

	tests := []struct {
		name    string
		off, n  int
		wantErr bool
	}{
		{"whole buffer", 0, 8, false},
		{"empty read at end", 8, 0, false},
		{"one past end", 8, 1, true},
		{"negative offset", -1, 1, true},
		{"negative length", 0, -1, true},
		{"huge length", 4, int(^uint32(0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sr.Bytes(tt.off, tt.n, "edge")
			if (err != nil) != tt.wantErr {
				t.Errorf("Bytes(%d, %d) error = %v, wantErr %v", tt.off, tt.n, err, tt.wantErr)
			}
		})
	}
}

func TestSafeReader_Sub_AbsoluteOffsets(t *testing.T) {
	data := make([]byte, 32)
	sr := NewSafeReader(data, "sub")

	sub, err := sr.Sub(10, 4, "frame")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Len() != 4 || sub.Base() != 10 {
		t.Fatalf("expected len 4 base 10, got len %d base %d", sub.Len(), sub.Base())
	}

	_, err = sub.Bytes(2, 4, "overrun")
	var oob *types.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *types.OutOfBoundsError, got %v", err)
	}
	if oob.Offset != 12 || oob.Size != 14 {
		t.Errorf("expected absolute offset 12 size 14, got offset %d size %d", oob.Offset, oob.Size)
	}
}

func TestRead_Uint8(t *testing.T) {
	sr := NewSafeReader([]byte{0x42}, "test.mp3")

	val, err := Read[uint8](sr, 0, "test uint8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if val != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", val)
	}
}

func TestRead_Uint16(t *testing.T) {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, 0x1234)
	sr := NewSafeReader(data, "test.mp3")

	val, err := Read[uint16](sr, 0, "test uint16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if val != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04x", val)
	}
}

func TestRead_Uint32(t *testing.T) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, 0x12345678)
	sr := NewSafeReader(data, "test.mp3")

	val, err := Read[uint32](sr, 0, "test uint32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if val != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", val)
	}
}

func TestRead_Uint64(t *testing.T) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, 0x123456789ABCDEF0)
	sr := NewSafeReader(data, "test.mp3")

	val, err := Read[uint64](sr, 0, "test uint64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if val != 0x123456789ABCDEF0 {
		t.Errorf("expected 0x123456789ABCDEF0, got 0x%016x", val)
	}
}

func TestReader_Sequential(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	sr := NewSafeReader(data, "test.flac")
	r := NewReader(sr, 0)

	val1, err := ReadValue[uint8](r, "first byte")
	if err != nil {
		t.Fatalf("read 1 failed: %v", err)
	}
	if val1 != 0x01 {
		t.Errorf("expected 0x01, got 0x%02x", val1)
	}

	val2, err := ReadValue[uint16](r, "second word")
	if err != nil {
		t.Fatalf("read 2 failed: %v", err)
	}
	expected := binary.BigEndian.Uint16([]byte{0x02, 0x03})
	if val2 != expected {
		t.Errorf("expected 0x%04x, got 0x%04x", expected, val2)
	}

	val3, err := ReadValueLE[uint32](r, "le dword")
	if err != nil {
		t.Fatalf("read 3 failed: %v", err)
	}
	if val3 != 0x07060504 {
		t.Errorf("expected 0x07060504, got 0x%08x", val3)
	}

	// Verify offset advanced correctly
	if r.Offset() != 7 {
		t.Errorf("expected offset 7, got %d", r.Offset())
	}
	if r.Remaining() != 1 {
		t.Errorf("expected 1 remaining byte, got %d", r.Remaining())
	}
}

func TestReader_Skip(t *testing.T) {
	data := make([]byte, 100)
	sr := NewSafeReader(data, "test.flac")
	r := NewReader(sr, 10)

	initialOffset := r.Offset()
	if initialOffset != 10 {
		t.Errorf("expected initial offset 10, got %d", initialOffset)
	}

	if err := r.Skip(20, "gap"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Offset() != 30 {
		t.Errorf("expected offset 30 after skip, got %d", r.Offset())
	}

	if err := r.Skip(71, "too far"); err == nil {
		t.Error("expected error when skipping past the end")
	}
	if r.Offset() != 30 {
		t.Errorf("failed skip must not move the offset, got %d", r.Offset())
	}
}

func TestReader_ReadString(t *testing.T) {
	data := []byte("Hello, World!")
	sr := NewSafeReader(data, "test.flac")
	r := NewReader(sr, 0)

	str, err := r.ReadString(5, "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if str != "Hello" {
		t.Errorf("expected 'Hello', got '%s'", str)
	}

	if r.Offset() != 5 {
		t.Errorf("expected offset 5, got %d", r.Offset())
	}
}

func TestChainReader_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 'a', 'b'}
	sr := NewSafeReader(data, "test.flac")
	cr := NewChainReader(NewReader(sr, 0))

	v1 := ReadChained[uint8](cr, "first")
	v2 := ReadChained[uint8](cr, "second")
	v3 := ReadChainedLE[uint16](cr, "third")
	s := cr.String(2, "text")

	if err := cr.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v1 != 0x01 || v2 != 0x02 || v3 != 0x0403 || s != "ab" {
		t.Errorf("unexpected values: %02x %02x %04x %q", v1, v2, v3, s)
	}
}

func TestChainReader_ErrorAccumulation(t *testing.T) {
	data := []byte{0x01, 0x02}
	sr := NewSafeReader(data, "test.flac")
	cr := NewChainReader(NewReader(sr, 0))

	_ = ReadChained[uint8](cr, "first")  // OK
	_ = ReadChained[uint8](cr, "second") // OK
	_ = ReadChained[uint8](cr, "third")  // Error - out of bounds

	first := cr.Error()
	if first == nil {
		t.Fatal("expected error, got nil")
	}

	// Once error occurs, subsequent reads should not execute
	cr.Skip(1, "skip")
	if b := cr.Bytes(1, "bytes"); b != nil {
		t.Errorf("expected nil bytes after error, got %v", b)
	}
	if cr.Error() != first {
		t.Fatal("first error should persist")
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1024*1024) // 1MB
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(data[i:], uint32(i))
	}
	sr := NewSafeReader(data, "bench.mp3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := (i % (len(data) / 4)) * 4
		_, _ = Read[uint32](sr, offset, "benchmark")
	}
}

func BenchmarkReader_Sequential(b *testing.B) {
	data := make([]byte, 1024*1024) // 1MB
	sr := NewSafeReader(data, "bench.mp3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(sr, 0)
		for j := 0; j < 1000; j++ {
			_, _ = ReadValue[uint32](r, "test")
		}
	}
}
