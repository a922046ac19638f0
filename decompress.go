package heredity

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Decompress wraps r so that reads return the decompressed pedigree. The
// returned ReadCloser does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionDisabled:
		return io.NopCloser(r), nil
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return gz, nil
	case CompressionZStandard:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return dec.IOReadCloser(), nil
	}

	return nil, pfx.Err(fmt.Errorf("compression choice %s is not supported", c))
}
