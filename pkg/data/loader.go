package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrTooFewColumns is returned when the file has less than two columns.
	ErrTooFewColumns = errors.New("need at least two columns")
	// ErrNotNumeric is returned when one of the first two columns can't be read as numbers.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Dataset is the two-column table read from the input file.
// Only the first two columns of the file are kept.
type Dataset struct {
	Path  string
	XName string
	YName string
	X     []float64
	Y     []float64
}

// NaNValues are the cell values read as a missing number.
var NaNValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "<nil>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Len returns the number of data rows (header excluded).
func (d *Dataset) Len() int { return len(d.X) }

type loadOptions struct {
	delimiter rune
}

// Option configures Load.
type Option func(*loadOptions)

// WithDelimiter sets the field separator. Default is ','.
func WithDelimiter(r rune) Option {
	return func(o *loadOptions) { o.delimiter = r }
}

// Load reads a delimited text file with a header row and returns its first two columns.
func Load(path string, opts ...Option) (*Dataset, error) {
	o := loadOptions{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(bufio.NewReader(file))
	r.Comma = o.delimiter
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// "1, 2" is a number after a space; header names are kept verbatim
	for i := 1; i < len(records); i++ {
		for j, field := range records[i] {
			records[i][j] = strings.TrimSpace(field)
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NaNValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	if df.Ncol() < 2 {
		return nil, fmt.Errorf("parse %s: %w (got %d)", path, ErrTooFewColumns, df.Ncol())
	}

	names := df.Names()
	x, err := numericColumn(df.Col(names[0]))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	y, err := numericColumn(df.Col(names[1]))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Dataset{
		Path:  path,
		XName: names[0],
		YName: names[1],
		X:     x,
		Y:     y,
	}, nil
}

// numericColumn accepts int and float columns; anything else (strings, bools) is rejected.
func numericColumn(s series.Series) ([]float64, error) {
	switch s.Type() {
	case series.Float, series.Int:
		return s.Float(), nil
	default:
		return nil, fmt.Errorf("%q: %w (detected %s)", s.Name, ErrNotNumeric, s.Type())
	}
}
