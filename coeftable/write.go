package coeftable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/rvjitter/compress"
	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/format"
	"github.com/moby/sys/atomicwriter"
	"gopkg.in/yaml.v3"
)

// WriteCSV writes the table as parameter,value,std rows in name order.
// Errors are written after the floor clamp.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnParameter, ColumnValue, ColumnStd}); err != nil {
		return err
	}
	for _, e := range t.Entries() {
		row := []string{
			e.Name,
			strconv.FormatFloat(e.Value, 'g', -1, 64),
			strconv.FormatFloat(e.Err, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteYAML writes the table in the layout ReadYAML accepts.
func WriteYAML(w io.Writer, t *Table) error {
	entries := t.Entries()
	doc := yamlDocument{Coefficients: make([]yamlEntry, 0, len(entries))}
	for _, e := range entries {
		value, std := e.Value, e.Err
		doc.Coefficients = append(doc.Coefficients, yamlEntry{Parameter: e.Name, Value: &value, Std: &std})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}

// Encode returns the table payload in the given encoding and compression.
func Encode(t *Table, enc format.TableEncoding, comp format.CompressionType) ([]byte, error) {
	var buf bytes.Buffer
	switch enc {
	case format.EncodingCSV:
		if err := WriteCSV(&buf, t); err != nil {
			return nil, err
		}
	case format.EncodingYAML:
		if err := WriteYAML(&buf, t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: encoding %s", errs.ErrUnsupportedTableType, enc)
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnsupportedTableType, err)
	}

	return codec.Compress(buf.Bytes())
}

// Write encodes the table and writes it to w.
func Write(w io.Writer, t *Table, enc format.TableEncoding, comp format.CompressionType) error {
	payload, err := Encode(t, enc, comp)
	if err != nil {
		return err
	}
	_, err = w.Write(payload)

	return err
}

// WriteFile atomically writes the table to path. The format follows the
// suffix exactly as LoadFile reads it back.
func WriteFile(path string, t *Table) error {
	enc, comp, err := DetectFormat(path)
	if err != nil {
		return err
	}

	payload, err := Encode(t, enc, comp)
	if err != nil {
		return err
	}

	return atomicwriter.WriteFile(path, payload, 0o644)
}
