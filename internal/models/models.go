package models

// Column names in the daily rental CSV.
const (
	ColYear       = "yr"
	ColSeason     = "season"
	ColMonth      = "mnth"
	ColWorkingDay = "workingday"
	ColCasual     = "casual"
	ColRegistered = "registered"
	ColTotal      = "cnt"
)

// RequiredColumns lists every column the dashboard reads, in file order.
var RequiredColumns = []string{ColYear, ColSeason, ColMonth, ColWorkingDay, ColCasual, ColRegistered, ColTotal}

// AllSeasons is the season selection that disables season filtering.
const AllSeasons = "All"

// User types in long-form aggregates.
const (
	UserCasual     = "casual"
	UserRegistered = "registered"
)

// Record is one day of rentals.
type Record struct {
	Year       string `json:"yr"`
	Season     string `json:"season"`
	Month      int    `json:"mnth"`
	WorkingDay int    `json:"workingday"` // 1 = working day, 0 = weekend or holiday
	Casual     int    `json:"casual"`
	Registered int    `json:"registered"`
	Total      int    `json:"cnt"`
}

// Dataset is the full table loaded from one CSV file. It is never mutated
// after load.
type Dataset struct {
	Path    string
	Records []Record
}

type FilterSelection struct {
	Year   string `json:"year"`
	Season string `json:"season"`
}

// SelectionDomain holds the values the UI may offer.
type SelectionDomain struct {
	Years   []string `json:"years"`
	Seasons []string `json:"seasons"` // always starts with AllSeasons
}

type YearTotal struct {
	Year  string `json:"yr" dataframe:"yr"`
	Total int    `json:"cnt" dataframe:"cnt"`
}

type SeasonTotal struct {
	Season string `json:"season" dataframe:"season"`
	Total  int    `json:"cnt" dataframe:"cnt"`
}

// UserTypeCount is one long-form row of the working-day breakdown.
type UserTypeCount struct {
	WorkingDay int    `json:"workingday" dataframe:"workingday"`
	UserType   string `json:"user_type" dataframe:"User Type"`
	Count      int    `json:"count" dataframe:"Count"`
}

// MonthlyUserCount is one long-form row of the monthly trend.
type MonthlyUserCount struct {
	Month    int    `json:"mnth" dataframe:"mnth"`
	UserType string `json:"user_type" dataframe:"User Type"`
	Count    int    `json:"count" dataframe:"Count"`
}

type RFMRow struct {
	Recency   string `json:"recency" dataframe:"Recency"`
	Frequency string `json:"frequency" dataframe:"Frequency"`
	Monetary  string `json:"monetary" dataframe:"Monetary"`
}
