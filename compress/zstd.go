package compress

// ZstdCompressor reads and writes single-frame Zstandard payloads.
//
// The pure Go implementation (klauspost/compress) is used by default. Building
// with cgo and the gozstd tag switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
