package heredity

import (
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// Compression indicates how (and whether) a pedigree file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGzip
	CompressionZStandard
)

// DetectCompression infers the compression scheme from the file name.
func DetectCompression(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(path, ".zst"):
		return CompressionZStandard
	}

	return CompressionDisabled
}

// decompressionReader wraps r so that the pedigree parser always sees
// plain text.
func decompressionReader(r io.Reader, c Compression) (io.Reader, error) {
	switch c {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return gz, nil
	case CompressionZStandard:
		return NewZStandardReader(r), nil
	}

	return r, nil
}
