package analysis

import (
	"sort"
	"strconv"

	"github.com/lox/bikeusage/internal/models"
)

// YearlyTotals sums cnt per year, ascending by year.
func YearlyTotals(records []models.Record) []models.YearTotal {
	sums := make(map[string]int)
	for _, r := range records {
		sums[r.Year] += r.Total
	}
	out := make([]models.YearTotal, 0, len(sums))
	for _, k := range sortedKeys(sums) {
		out = append(out, models.YearTotal{Year: k, Total: sums[k]})
	}
	return out
}

// SeasonalTotals sums cnt per season, ascending by season.
func SeasonalTotals(records []models.Record) []models.SeasonTotal {
	sums := make(map[string]int)
	for _, r := range records {
		sums[r.Season] += r.Total
	}
	out := make([]models.SeasonTotal, 0, len(sums))
	for _, k := range sortedKeys(sums) {
		out = append(out, models.SeasonTotal{Season: k, Total: sums[k]})
	}
	return out
}

type userSums struct {
	casual, registered int
}

// UserTypesByWorkingDay sums casual and registered riders per working-day
// flag and returns them in long form: ascending flag, casual before
// registered.
func UserTypesByWorkingDay(records []models.Record) []models.UserTypeCount {
	sums := make(map[int]*userSums)
	for _, r := range records {
		s := sums[r.WorkingDay]
		if s == nil {
			s = &userSums{}
			sums[r.WorkingDay] = s
		}
		s.casual += r.Casual
		s.registered += r.Registered
	}

	out := make([]models.UserTypeCount, 0, 2*len(sums))
	for _, k := range sortedIntKeys(sums) {
		s := sums[k]
		out = append(out,
			models.UserTypeCount{WorkingDay: k, UserType: models.UserCasual, Count: s.casual},
			models.UserTypeCount{WorkingDay: k, UserType: models.UserRegistered, Count: s.registered},
		)
	}
	return out
}

// MonthlyUserTypes sums casual and registered riders per month in long form,
// ascending by month.
func MonthlyUserTypes(records []models.Record) []models.MonthlyUserCount {
	sums := make(map[int]*userSums)
	for _, r := range records {
		s := sums[r.Month]
		if s == nil {
			s = &userSums{}
			sums[r.Month] = s
		}
		s.casual += r.Casual
		s.registered += r.Registered
	}

	out := make([]models.MonthlyUserCount, 0, 2*len(sums))
	for _, k := range sortedIntKeys(sums) {
		s := sums[k]
		out = append(out,
			models.MonthlyUserCount{Month: k, UserType: models.UserCasual, Count: s.casual},
			models.MonthlyUserCount{Month: k, UserType: models.UserRegistered, Count: s.registered},
		)
	}
	return out
}

// sortedKeys orders categorical keys numerically when every key is an
// integer and lexicographically otherwise.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortCategories(keys)
	return keys
}

// SortCategories sorts keys in place using the same rule as the aggregates.
func SortCategories(keys []string) {
	nums := make(map[string]int, len(keys))
	numeric := true
	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil {
			numeric = false
			break
		}
		nums[k] = n
	}
	if numeric {
		sort.Slice(keys, func(i, j int) bool { return nums[keys[i]] < nums[keys[j]] })
		return
	}
	sort.Strings(keys)
}

func sortedIntKeys(m map[int]*userSums) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
