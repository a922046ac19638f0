package heredity

import (
	"bytes"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/carbocation/pfx"
)

// Compression indicates how (and whether) a pedigree file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGzip
	CompressionZStandard
)

// CompressionFor picks the compression from the file extension of name.
func CompressionFor(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZStandard
	}
	return CompressionDisabled
}

var (
	magicGzip      = []byte{0x1f, 0x8b}
	magicZStandard = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// SniffCompression reads the first bytes of r to recognize gzip or zstd data,
// then seeks r back to where it started.
func SniffCompression(r io.ReadSeeker) (Compression, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return CompressionDisabled, pfx.Err(err)
	}

	head := make([]byte, len(magicZStandard))
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return CompressionDisabled, pfx.Err(err)
	}
	head = head[:n]

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return CompressionDisabled, pfx.Err(err)
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		return CompressionGzip, nil
	case bytes.HasPrefix(head, magicZStandard):
		return CompressionZStandard, nil
	}
	return CompressionDisabled, nil
}

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "CompressionDisabled"
	case CompressionGzip:
		return "CompressionGzip"
	case CompressionZStandard:
		return "CompressionZStandard"

	default:
		return "Illegal selection"
	}
}
