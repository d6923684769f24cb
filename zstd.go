package heredity

import (
	"io"

	"github.com/DataDog/zstd"
)

// NewZStandardReader decompresses Zstandard-compressed pedigree data.
// The returned reader must be drained before the underlying file is
// closed.
func NewZStandardReader(r io.Reader) io.ReadCloser {
	return zstd.NewReader(r)
}
