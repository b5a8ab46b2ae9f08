package analysis

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
)

// WriteTables prints every aggregate in s as a plain-text table.
func WriteTables(w io.Writer, s Summary) error {
	fmt.Fprintf(w, "Selection: year=%s season=%s (%d of %d rows)\n\n", s.Selection.Year, s.Selection.Season, s.Filtered, s.Rows)

	if err := writeTable(w, "Yearly Total Bike Usage", s.Yearly); err != nil {
		return err
	}
	if err := writeTable(w, "User Type Dominance on Working and Non-Working Days", s.UserTypes); err != nil {
		return err
	}
	if err := writeTable(w, "Seasonal Impact on Bike Usage", s.Seasonal); err != nil {
		return err
	}
	if err := writeTable(w, "Monthly Usage by User Type", s.Monthly); err != nil {
		return err
	}
	return writeTable(w, "RFM Analysis Summary", s.RFM)
}

func writeTable[T any](w io.Writer, title string, rows []T) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprint(w, "(no rows)\n\n")
		return err
	}
	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return fmt.Errorf("table %q: %w", title, df.Err)
	}

	// df.String elides rows past the first ten, so print the records instead.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, rec := range df.Records() {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
