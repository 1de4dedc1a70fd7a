// SPDX-License-Identifier: EPL-2.0

package siglent

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/ik5/waveseek/project"
)

// HeaderRows is the number of rows before the first sample.
const HeaderRows = 12

// header row indexes
const (
	rowRecordLength = 0
	rowInterval     = 1
	rowUnitY        = 2
	rowScaleY       = 3
	rowOffsetY      = 4
	rowScaleX       = 6
	rowSource       = 10
)

// Capture is one imported channel.
type Capture struct {
	Waveform *project.Waveform
	// ScalePerDivX is the timebase the scope was set to. It is not part of
	// the waveform and is usually applied to the project when the capture is
	// its first channel.
	ScalePerDivX float64
}

// Read reads a whole CSV file from r.
func Read(r io.Reader) (*Capture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading siglent csv: %w", err)
	}

	return Parse(data)
}

// Parse decodes a CSV file held in memory.
func Parse(data []byte) (*Capture, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding windows-1252: %w", err)
		}
		data = decoded
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading siglent csv: %w", err)
	}

	if len(rows) < HeaderRows {
		return nil, fmt.Errorf("%w: %d of %d rows", ErrShortHeader, len(rows), HeaderRows)
	}

	n, err := recordLength(rows[rowRecordLength])
	if err != nil {
		return nil, err
	}

	if got := len(rows) - HeaderRows; got != n {
		return nil, &project.ValidationError{
			Field: "numSamples",
			Msg:   fmt.Sprintf("header says %d, file has %d", n, got),
			Err:   project.ErrSampleCountMismatch,
		}
	}

	cfg := project.DefaultWaveformConfig()
	cfg.UnitY = value(rows[rowUnitY])
	cfg.Name = value(rows[rowSource])

	floats := []struct {
		field string
		row   int
		dst   *float64
	}{
		{"sampleInterval", rowInterval, &cfg.SampleInterval},
		{"scalePerDivY", rowScaleY, &cfg.ScalePerDivY},
		{"offsetY", rowOffsetY, &cfg.OffsetY},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloat(f.field, value(rows[f.row])); err != nil {
			return nil, err
		}
	}

	scaleX, err := parseFloat("scalePerDivX", value(rows[rowScaleX]))
	if err != nil {
		return nil, err
	}

	samples := make([]float32, n)
	for i, row := range rows[HeaderRows:] {
		if len(row) < 2 {
			return nil, &project.ValidationError{
				Field: "samples",
				Msg:   fmt.Sprintf("row %d has %d fields", HeaderRows+i, len(row)),
				Err:   project.ErrInvalidField,
			}
		}

		if i == 0 {
			if cfg.OffsetX, err = parseFloat("offsetX", row[0]); err != nil {
				return nil, err
			}
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 32)
		if err != nil {
			return nil, &project.ValidationError{
				Field: "samples",
				Msg:   fmt.Sprintf("row %d", HeaderRows+i),
				Err:   fmt.Errorf("%w: %w", project.ErrInvalidField, err),
			}
		}
		samples[i] = float32(v)
	}

	return &Capture{
		Waveform:     project.NewWaveform(cfg, samples),
		ScalePerDivX: scaleX,
	}, nil
}

// recordLength reads "Record Length,Analog:N".
func recordLength(row []string) (int, error) {
	raw := value(row)

	_, count, ok := strings.Cut(raw, ":")
	if !ok {
		count = raw
	}

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n < 0 {
		if err == nil {
			err = strconv.ErrRange
		}

		return 0, &project.ValidationError{
			Field: "numSamples",
			Msg:   strconv.Quote(raw),
			Err:   fmt.Errorf("%w: %w", project.ErrInvalidField, err),
		}
	}

	return n, nil
}

func value(row []string) string {
	if len(row) < 2 {
		return ""
	}

	return strings.TrimSpace(row[1])
}

func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &project.ValidationError{
			Field: field,
			Msg:   strconv.Quote(raw),
			Err:   fmt.Errorf("%w: %w", project.ErrInvalidField, err),
		}
	}

	return v, nil
}
