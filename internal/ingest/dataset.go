package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/lox/bikeusage/internal/models"
)

// Load reads a daily rental CSV file into a Dataset.
func Load(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(path, f)
}

// Read parses CSV with a header row from r. name is only used in errors.
// A file with a header and no rows is an empty Dataset.
func Read(name string, r io.Reader) (*models.Dataset, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: name, Err: errors.New("no header row")}
	}
	if err := validateColumns(rows[0]); err != nil {
		return nil, err
	}
	if len(rows) == 1 {
		return &models.Dataset{Path: name, Records: []models.Record{}}, nil
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: name, Err: df.Err}
	}

	years := df.Col(models.ColYear).Records()
	seasons := df.Col(models.ColSeason).Records()

	ints := make(map[string][]int, 5)
	for _, col := range []string{models.ColMonth, models.ColWorkingDay, models.ColCasual, models.ColRegistered, models.ColTotal} {
		vals, err := intColumn(df, col)
		if err != nil {
			return nil, err
		}
		ints[col] = vals
	}

	records := make([]models.Record, df.Nrow())
	for i := range records {
		records[i] = models.Record{
			Year:       years[i],
			Season:     seasons[i],
			Month:      ints[models.ColMonth][i],
			WorkingDay: ints[models.ColWorkingDay][i],
			Casual:     ints[models.ColCasual][i],
			Registered: ints[models.ColRegistered][i],
			Total:      ints[models.ColTotal][i],
		}
	}

	return &models.Dataset{Path: name, Records: records}, nil
}
