package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/rvjitter/format"
)

// Compressor compresses a whole table file payload.
//
// Memory management:
//   - Returned slice is owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor or
// by the corresponding command-line tool.
//
// Error conditions:
//   - Returns error if input data is corrupted or invalid
//   - Returns error if data was compressed with an incompatible algorithm
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// CompressionFromExt maps a file name suffix to a compression type.
// Unknown or missing suffixes map to format.CompressionNone.
func CompressionFromExt(path string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// TrimCompressionExt strips a recognised compression suffix from path.
//
//	TrimCompressionExt("fitparamsrms.csv.zst") // "fitparamsrms.csv"
func TrimCompressionExt(path string) string {
	if CompressionFromExt(path) == format.CompressionNone {
		return path
	}

	return strings.TrimSuffix(path, filepath.Ext(path))
}
