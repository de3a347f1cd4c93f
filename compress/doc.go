// Package compress provides the codecs used to read and write compressed
// coefficient-table files.
//
// Every codec produces a format the matching command-line tool understands,
// so a table compressed with `zstd`, `lz4` or `s2c` loads without conversion:
//
//   - Zstd: a single Zstandard frame (klauspost/compress, or valyala/gozstd
//     when built with cgo and the gozstd tag)
//   - S2: the S2 stream format (klauspost/compress/s2)
//   - LZ4: the LZ4 frame format (pierrec/lz4/v4)
//   - None: data passes through unchanged
//
// Select a codec by type or by file suffix:
//
//	codec, err := compress.GetCodec(compress.CompressionFromExt("fitparamsrms.csv.zst"))
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(data)
package compress
