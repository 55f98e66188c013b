// Package compression provides the value codecs the byte store can run
// its payloads through.
package compression

// Compressor turns a payload into its encoded form and back. Decompress
// must invert Compress exactly.
type Compressor interface {
	Compress([]byte) ([]byte, error)
	Decompress([]byte) ([]byte, error)
}

var (
	_ Compressor = (*flateCompressor)(nil)
	_ Compressor = (*gzipCompressor)(nil)
	_ Compressor = (*snappyCompressor)(nil)

	DefaultCompressor = NewSnappyCompressor()

	// Compressors maps codec names (as accepted on CLI flags) to
	// ready-to-use instances.
	Compressors = map[string]Compressor{
		"flate":  NewFlateCompressor(),
		"gzip":   NewGzipCompressor(),
		"snappy": NewSnappyCompressor(),
	}
)
