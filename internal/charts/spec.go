// Package charts turns dashboard aggregates into chart specifications and
// rasterises them. Building a Spec is pure; rendering never mutates it.
package charts

import (
	"strconv"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/models"
)

type Kind string

const (
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
	KindLine       Kind = "line"
)

// Chart names, used in URLs and file names.
const (
	Yearly     = "yearly"
	WorkingDay = "workingday"
	Seasonal   = "seasonal"
	Monthly    = "monthly"
)

// Names lists every chart in page order.
var Names = []string{Yearly, WorkingDay, Seasonal, Monthly}

// Fixed commentary shown under each panel.
const (
	YearlyCaption     = "The total bike usage shows a year-over-year growth, indicating an increasing trend in bike adoption."
	WorkingDayCaption = "Registered users dominate on working days, while casual users are more prevalent on holidays."
	SeasonalCaption   = "Spring and summer see the highest bike usage, suggesting that weather significantly influences user activity."
	MonthlyCaption    = "Bike usage peaks during mid-year months, aligning with warmer weather and vacation periods."
	RFMCaption        = "The RFM analysis identifies users' behavioral patterns, helping target marketing efforts effectively."
)

// Series is one named run of values aligned with Spec.Categories.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Spec is everything needed to draw one chart.
type Spec struct {
	Name       string   `json:"name"`
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	XLabel     string   `json:"x_label"`
	YLabel     string   `json:"y_label"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
	Caption    string   `json:"caption"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
}

// HasData reports whether there is at least one positive value to draw.
func (s Spec) HasData() bool {
	return s.MaxValue() > 0
}

func (s Spec) MaxValue() float64 {
	var peak float64
	for _, series := range s.Series {
		for _, v := range series.Values {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// Build returns the four chart specs for a summary in page order.
func Build(s analysis.Summary) []Spec {
	return []Spec{
		YearlyChart(s.Yearly),
		WorkingDayChart(s.UserTypes),
		SeasonalChart(s.Seasonal),
		MonthlyChart(s.Monthly),
	}
}

// Find returns the named spec from specs.
func Find(specs []Spec, name string) (Spec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

func YearlyChart(rows []models.YearTotal) Spec {
	spec := Spec{
		Name:    Yearly,
		Kind:    KindBar,
		Title:   "Yearly Total Bike Usage",
		XLabel:  "Year",
		YLabel:  "Total Usage",
		Caption: YearlyCaption,
		Width:   800,
		Height:  400,
	}
	values := make([]float64, 0, len(rows))
	spec.Categories = make([]string, 0, len(rows))
	for _, r := range rows {
		spec.Categories = append(spec.Categories, r.Year)
		values = append(values, float64(r.Total))
	}
	spec.Series = []Series{{Name: "cnt", Values: values}}
	return spec
}

func SeasonalChart(rows []models.SeasonTotal) Spec {
	spec := Spec{
		Name:    Seasonal,
		Kind:    KindBar,
		Title:   "Seasonal Impact on Bike Usage",
		XLabel:  "Season",
		YLabel:  "Total Usage",
		Caption: SeasonalCaption,
		Width:   1000,
		Height:  400,
	}
	values := make([]float64, 0, len(rows))
	spec.Categories = make([]string, 0, len(rows))
	for _, r := range rows {
		spec.Categories = append(spec.Categories, r.Season)
		values = append(values, float64(r.Total))
	}
	spec.Series = []Series{{Name: "cnt", Values: values}}
	return spec
}

func WorkingDayChart(rows []models.UserTypeCount) Spec {
	spec := Spec{
		Name:    WorkingDay,
		Kind:    KindGroupedBar,
		Title:   "User Type Dominance on Working and Non-Working Days",
		XLabel:  "Working Day (1 = Yes, 0 = No)",
		YLabel:  "Total Users",
		Caption: WorkingDayCaption,
		Width:   800,
		Height:  400,
	}
	long := make([]longRow, len(rows))
	for i, r := range rows {
		long[i] = longRow{key: strconv.Itoa(r.WorkingDay), userType: r.UserType, count: r.Count}
	}
	spec.Categories, spec.Series = pivot(long)
	return spec
}

func MonthlyChart(rows []models.MonthlyUserCount) Spec {
	spec := Spec{
		Name:    Monthly,
		Kind:    KindLine,
		Title:   "Monthly Usage by User Type",
		XLabel:  "Month",
		YLabel:  "Total Users",
		Caption: MonthlyCaption,
		Width:   1000,
		Height:  400,
	}
	long := make([]longRow, len(rows))
	for i, r := range rows {
		long[i] = longRow{key: strconv.Itoa(r.Month), userType: r.UserType, count: r.Count}
	}
	spec.Categories, spec.Series = pivot(long)
	return spec
}

type longRow struct {
	key      string
	userType string
	count    int
}

// pivot turns long-form rows into categories plus one series per user type,
// keeping the order in which keys and user types first appear.
func pivot(rows []longRow) ([]string, []Series) {
	categories := []string{}
	catIndex := make(map[string]int)
	for _, r := range rows {
		if _, ok := catIndex[r.key]; !ok {
			catIndex[r.key] = len(categories)
			categories = append(categories, r.key)
		}
	}

	series := []Series{}
	seriesIndex := make(map[string]int)
	for _, r := range rows {
		i, ok := seriesIndex[r.userType]
		if !ok {
			i = len(series)
			seriesIndex[r.userType] = i
			series = append(series, Series{Name: r.userType, Values: make([]float64, len(categories))})
		}
		series[i].Values[catIndex[r.key]] += float64(r.count)
	}
	return categories, series
}
