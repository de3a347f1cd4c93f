// Package format holds the small enumerations shared by the coefficient table
// loaders and the compression codecs.
package format

type (
	CompressionType uint8
	TableEncoding   uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed table file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.

	EncodingCSV  TableEncoding = 0x1 // EncodingCSV is a parameter,value,std CSV table.
	EncodingYAML TableEncoding = 0x2 // EncodingYAML is a YAML list of parameter entries.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Ext returns the file suffix used for the compression type, or "" for none.
func (c CompressionType) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

func (e TableEncoding) String() string {
	switch e {
	case EncodingCSV:
		return "CSV"
	case EncodingYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}
