package ingest

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/lox/bikeusage/internal/models"
)

// LoadError reports a dataset file that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports a required column that is absent or has the wrong type.
type SchemaError struct {
	Column string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("column %q: %s: %v", e.Column, e.Reason, e.Err)
	}
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

const (
	ReasonMissing    = "missing"
	ReasonNotInteger = "not an integer column"
)

// columnTypes pins the parser's type for each required column. Categorical
// keys stay as text so "2011" and "1" are compared as written.
var columnTypes = map[string]series.Type{
	models.ColYear:       series.String,
	models.ColSeason:     series.String,
	models.ColMonth:      series.Int,
	models.ColWorkingDay: series.Int,
	models.ColCasual:     series.Int,
	models.ColRegistered: series.Int,
	models.ColTotal:      series.Int,
}

// validateColumns checks that every required column is in header, reporting
// the first missing one in file order.
func validateColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, col := range models.RequiredColumns {
		if !present[col] {
			return &SchemaError{Column: col, Reason: ReasonMissing}
		}
	}
	return nil
}

// intColumn extracts an integer column. Cells the parser could not read as
// integers, including NA, make the whole column fail.
func intColumn(df dataframe.DataFrame, col string) ([]int, error) {
	vals, err := df.Col(col).Int()
	if err != nil {
		return nil, &SchemaError{Column: col, Reason: ReasonNotInteger, Err: err}
	}
	return vals, nil
}
