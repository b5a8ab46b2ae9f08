package charts

import (
	"bytes"
	"image/png"
	"reflect"
	"testing"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/models"
)

func sampleSummary(sel models.FilterSelection) analysis.Summary {
	ds := &models.Dataset{Records: []models.Record{
		{Year: "0", Season: "1", Month: 1, WorkingDay: 1, Casual: 10, Registered: 50, Total: 60},
		{Year: "0", Season: "2", Month: 5, WorkingDay: 0, Casual: 30, Registered: 5, Total: 35},
		{Year: "1", Season: "3", Month: 7, WorkingDay: 1, Casual: 100, Registered: 400, Total: 500},
		{Year: "1", Season: "4", Month: 11, WorkingDay: 0, Casual: 7, Registered: 3, Total: 10},
	}}
	return analysis.Summarize(ds, sel)
}

func TestBuild_Bindings(t *testing.T) {
	specs := Build(sampleSummary(models.FilterSelection{Year: "0", Season: models.AllSeasons}))

	tests := []struct {
		name    string
		kind    Kind
		title   string
		xLabel  string
		yLabel  string
		caption string
	}{
		{Yearly, KindBar, "Yearly Total Bike Usage", "Year", "Total Usage", YearlyCaption},
		{WorkingDay, KindGroupedBar, "User Type Dominance on Working and Non-Working Days", "Working Day (1 = Yes, 0 = No)", "Total Users", WorkingDayCaption},
		{Seasonal, KindBar, "Seasonal Impact on Bike Usage", "Season", "Total Usage", SeasonalCaption},
		{Monthly, KindLine, "Monthly Usage by User Type", "Month", "Total Users", MonthlyCaption},
	}

	if len(specs) != len(tests) {
		t.Fatalf("len(specs) = %d, want %d", len(specs), len(tests))
	}
	for i, tt := range tests {
		s := specs[i]
		if s.Name != tt.name || s.Kind != tt.kind {
			t.Errorf("specs[%d] = %s/%s, want %s/%s", i, s.Name, s.Kind, tt.name, tt.kind)
		}
		if s.Title != tt.title || s.XLabel != tt.xLabel || s.YLabel != tt.yLabel {
			t.Errorf("%s labels = %q %q %q", s.Name, s.Title, s.XLabel, s.YLabel)
		}
		if s.Caption != tt.caption {
			t.Errorf("%s caption = %q", s.Name, s.Caption)
		}
		for _, series := range s.Series {
			if len(series.Values) != len(s.Categories) {
				t.Errorf("%s series %s has %d values for %d categories", s.Name, series.Name, len(series.Values), len(s.Categories))
			}
		}
	}
}

func TestWorkingDayChart_Pivot(t *testing.T) {
	spec := WorkingDayChart([]models.UserTypeCount{
		{WorkingDay: 0, UserType: models.UserCasual, Count: 30},
		{WorkingDay: 0, UserType: models.UserRegistered, Count: 5},
		{WorkingDay: 1, UserType: models.UserCasual, Count: 10},
		{WorkingDay: 1, UserType: models.UserRegistered, Count: 50},
	})

	if want := []string{"0", "1"}; !reflect.DeepEqual(spec.Categories, want) {
		t.Errorf("Categories = %v, want %v", spec.Categories, want)
	}
	want := []Series{
		{Name: models.UserCasual, Values: []float64{30, 10}},
		{Name: models.UserRegistered, Values: []float64{5, 50}},
	}
	if !reflect.DeepEqual(spec.Series, want) {
		t.Errorf("Series = %+v, want %+v", spec.Series, want)
	}
	if spec.MaxValue() != 50 {
		t.Errorf("MaxValue = %v, want 50", spec.MaxValue())
	}
}

func TestWorkingDayChart_EmptySelection(t *testing.T) {
	specs := Build(sampleSummary(models.FilterSelection{Year: "0", Season: "9"}))
	spec, ok := Find(specs, WorkingDay)
	if !ok {
		t.Fatal("working day spec missing")
	}
	if spec.HasData() {
		t.Error("expected no data for out-of-domain season")
	}
	if len(spec.Categories) != 0 {
		t.Errorf("Categories = %v, want none", spec.Categories)
	}

	yearly, _ := Find(specs, Yearly)
	if !yearly.HasData() {
		t.Error("yearly chart should ignore the selection")
	}
}

func TestRenderer_PNG(t *testing.T) {
	r := NewRenderer()
	full := Build(sampleSummary(models.FilterSelection{Year: "1", Season: models.AllSeasons}))
	empty, _ := Find(Build(sampleSummary(models.FilterSelection{Year: "9", Season: models.AllSeasons})), WorkingDay)

	for _, spec := range append(full, empty) {
		t.Run(spec.Name, func(t *testing.T) {
			data, err := r.PNG(spec)
			if err != nil {
				t.Fatalf("PNG: %v", err)
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if cfg.Width != spec.Width || cfg.Height != spec.Height {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, spec.Width, spec.Height)
			}
		})
	}
}

func TestRenderer_DoesNotMutateSpec(t *testing.T) {
	spec, _ := Find(Build(sampleSummary(models.FilterSelection{Year: "1", Season: models.AllSeasons})), Monthly)
	before := Spec{
		Name:       spec.Name,
		Categories: append([]string(nil), spec.Categories...),
	}
	for _, s := range spec.Series {
		before.Series = append(before.Series, Series{Name: s.Name, Values: append([]float64(nil), s.Values...)})
	}

	if _, err := NewRenderer().PNG(spec); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !reflect.DeepEqual(spec.Categories, before.Categories) || !reflect.DeepEqual(spec.Series, before.Series) {
		t.Error("rendering mutated the spec")
	}
}

func TestRenderer_UnknownKind(t *testing.T) {
	spec := Spec{Name: "odd", Kind: "pie", Categories: []string{"a"}, Series: []Series{{Name: "x", Values: []float64{1}}}, Width: 100, Height: 100}
	if _, err := NewRenderer().PNG(spec); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestViridis(t *testing.T) {
	colors := viridis(2)
	if len(colors) != 2 {
		t.Fatalf("len = %d, want 2", len(colors))
	}
	if colors[0] == colors[1] {
		t.Error("expected distinct colours")
	}
	if got := viridisAt(0); got != viridisStops[0] {
		t.Errorf("viridisAt(0) = %v", got)
	}
	if got := viridisAt(1); got != viridisStops[4] {
		t.Errorf("viridisAt(1) = %v", got)
	}
}
