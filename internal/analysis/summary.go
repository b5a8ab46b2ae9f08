package analysis

import "github.com/lox/bikeusage/internal/models"

// Summary is every aggregate the dashboard shows for one selection.
type Summary struct {
	Selection models.FilterSelection    `json:"selection"`
	Domain    models.SelectionDomain    `json:"domain"`
	Rows      int                       `json:"rows"`
	Filtered  int                       `json:"filtered_rows"`
	Yearly    []models.YearTotal        `json:"yearly"`
	UserTypes []models.UserTypeCount    `json:"user_types"`
	Seasonal  []models.SeasonTotal      `json:"seasonal"`
	Monthly   []models.MonthlyUserCount `json:"monthly"`
	RFM       []models.RFMRow           `json:"rfm"`
}

// Summarize runs one filter and aggregation pass. Only the working-day
// breakdown honours the selection; the yearly, seasonal and monthly charts
// always cover the whole dataset.
func Summarize(ds *models.Dataset, sel models.FilterSelection) Summary {
	filtered := Filter(ds, sel)
	return Summary{
		Selection: sel,
		Domain:    Domain(ds),
		Rows:      len(ds.Records),
		Filtered:  len(filtered),
		Yearly:    YearlyTotals(ds.Records),
		UserTypes: UserTypesByWorkingDay(filtered),
		Seasonal:  SeasonalTotals(ds.Records),
		Monthly:   MonthlyUserTypes(ds.Records),
		RFM:       RFMSummary(),
	}
}
