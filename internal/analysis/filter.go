package analysis

import "github.com/lox/bikeusage/internal/models"

// Domain returns the selectable years and seasons in order of first
// appearance. Seasons always start with models.AllSeasons.
func Domain(ds *models.Dataset) models.SelectionDomain {
	d := models.SelectionDomain{
		Years:   []string{},
		Seasons: []string{models.AllSeasons},
	}
	seenYear := make(map[string]bool)
	seenSeason := make(map[string]bool)
	for _, r := range ds.Records {
		if !seenYear[r.Year] {
			seenYear[r.Year] = true
			d.Years = append(d.Years, r.Year)
		}
		if !seenSeason[r.Season] {
			seenSeason[r.Season] = true
			d.Seasons = append(d.Seasons, r.Season)
		}
	}
	return d
}

// ParseSelection turns raw UI input into a selection. Blank values fall back
// to the first year and to all seasons; anything else is kept as given, so an
// unknown value filters everything out rather than failing.
func ParseSelection(d models.SelectionDomain, year, season string) models.FilterSelection {
	sel := models.FilterSelection{Year: year, Season: season}
	if sel.Year == "" && len(d.Years) > 0 {
		sel.Year = d.Years[0]
	}
	if sel.Season == "" {
		sel.Season = models.AllSeasons
	}
	return sel
}

// Filter returns the records matching sel. The result never aliases the
// dataset's backing array.
func Filter(ds *models.Dataset, sel models.FilterSelection) []models.Record {
	out := []models.Record{}
	for _, r := range ds.Records {
		if r.Year != sel.Year {
			continue
		}
		if sel.Season != models.AllSeasons && r.Season != sel.Season {
			continue
		}
		out = append(out, r)
	}
	return out
}
