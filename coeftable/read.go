package coeftable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arloliu/rvjitter/compress"
	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/format"
	"gopkg.in/yaml.v3"
)

// CSV column names.
const (
	ColumnParameter = "parameter"
	ColumnValue     = "value"
	ColumnStd       = "std"
)

// yamlDocument is the YAML table layout:
//
//	coefficients:
//	  - parameter: RV_RMS_All_Giant_LMT_alpha
//	    value: 0.25
//	    std: 0.02
type yamlDocument struct {
	Coefficients []yamlEntry `yaml:"coefficients"`
}

type yamlEntry struct {
	Parameter string   `yaml:"parameter"`
	Value     *float64 `yaml:"value"`
	Std       *float64 `yaml:"std"`
}

// ReadCSV reads a table with a header row naming the parameter, value and std
// columns. Other columns, such as a leading index column, are ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty CSV", errs.ErrInvalidTable)
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidTable, err)
	}

	paramIdx, valueIdx, stdIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case ColumnParameter:
			paramIdx = i
		case ColumnValue:
			valueIdx = i
		case ColumnStd:
			stdIdx = i
		}
	}
	if paramIdx < 0 || valueIdx < 0 || stdIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain %s, %s and %s columns",
			errs.ErrInvalidTable, ColumnParameter, ColumnValue, ColumnStd)
	}
	width := max(paramIdx, valueIdx, stdIdx) + 1

	var entries []Entry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidTable, err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) < width {
			return nil, fmt.Errorf("%w: line %d has %d fields, want at least %d",
				errs.ErrInvalidTable, line, len(record), width)
		}

		value, err := parseFloat(record[valueIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d value: %w", errs.ErrInvalidTable, line, err)
		}
		std, err := parseFloat(record[stdIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d std: %w", errs.ErrInvalidTable, line, err)
		}

		entries = append(entries, Entry{
			Name:        strings.TrimSpace(record[paramIdx]),
			Coefficient: Coefficient{Value: value, Err: std},
		})
	}

	return newTable(entries)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ReadYAML reads a table in the YAML layout documented on yamlDocument.
func ReadYAML(r io.Reader) (*Table, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty YAML", errs.ErrInvalidTable)
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidTable, err)
	}

	entries := make([]Entry, 0, len(doc.Coefficients))
	for i, c := range doc.Coefficients {
		if c.Value == nil || c.Std == nil {
			return nil, fmt.Errorf("%w: entry %d (%q) needs both value and std",
				errs.ErrInvalidTable, i, c.Parameter)
		}
		entries = append(entries, Entry{
			Name:        strings.TrimSpace(c.Parameter),
			Coefficient: Coefficient{Value: *c.Value, Err: *c.Std},
		})
	}

	return newTable(entries)
}

// Read decodes a table payload with the given encoding and compression.
func Read(r io.Reader, enc format.TableEncoding, comp format.CompressionType) (*Table, error) {
	if comp != format.CompressionNone {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrUnsupportedTableType, err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		raw, err := codec.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidTable, err)
		}
		r = bytes.NewReader(raw)
	}

	switch enc {
	case format.EncodingCSV:
		return ReadCSV(r)
	case format.EncodingYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: encoding %s", errs.ErrUnsupportedTableType, enc)
	}
}

// DetectFormat infers encoding and compression from a file name such as
// "fitparamsrms.csv", "coeffs.yaml" or "fitparamsrms.csv.zst".
func DetectFormat(path string) (format.TableEncoding, format.CompressionType, error) {
	comp := compress.CompressionFromExt(path)
	base := compress.TrimCompressionExt(path)

	switch strings.ToLower(filepath.Ext(base)) {
	case ".csv":
		return format.EncodingCSV, comp, nil
	case ".yaml", ".yml":
		return format.EncodingYAML, comp, nil
	default:
		return 0, comp, fmt.Errorf("%w: %q", errs.ErrUnsupportedTableType, filepath.Base(path))
	}
}

// LoadFile reads the table at path, choosing the decoder from its suffix.
func LoadFile(path string) (*Table, error) {
	enc, comp, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, enc, comp)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return t, nil
}
