package analysis_test

import (
	"database/sql"
	"math/rand/v2"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/models"
)

// randomDataset builds a deterministic pseudo-random dataset shaped like
// day.csv.
func randomDataset(seed uint64, n int) *models.Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ds := &models.Dataset{}
	for i := 0; i < n; i++ {
		casual := rng.IntN(3500)
		registered := rng.IntN(7000)
		ds.Records = append(ds.Records, models.Record{
			Year:       strconv.Itoa(rng.IntN(2)),
			Season:     strconv.Itoa(1 + rng.IntN(4)),
			Month:      1 + rng.IntN(12),
			WorkingDay: rng.IntN(2),
			Casual:     casual,
			Registered: registered,
			Total:      casual + registered,
		})
	}
	return ds
}

func loadIntoSQLite(t *testing.T, records []models.Record) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE days (
		yr TEXT NOT NULL,
		season TEXT NOT NULL,
		mnth INTEGER NOT NULL,
		workingday INTEGER NOT NULL,
		casual INTEGER NOT NULL,
		registered INTEGER NOT NULL,
		cnt INTEGER NOT NULL
	)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO days (yr, season, mnth, workingday, casual, registered, cnt) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, r := range records {
		if _, err := stmt.Exec(r.Year, r.Season, r.Month, r.WorkingDay, r.Casual, r.Registered, r.Total); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return db
}

func queryTotals(t *testing.T, db *sql.DB, query string, args ...any) map[string]int {
	t.Helper()
	rows, err := db.Query(query, args...)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var total int
		if err := rows.Scan(&key, &total); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out[key] = total
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	return out
}

func TestAggregatesMatchSQLGroupBy(t *testing.T) {
	ds := randomDataset(42, 731)
	db := loadIntoSQLite(t, ds.Records)

	t.Run("yearly", func(t *testing.T) {
		want := queryTotals(t, db, `SELECT yr, SUM(cnt) FROM days GROUP BY yr`)
		got := analysis.YearlyTotals(ds.Records)
		if len(got) != len(want) {
			t.Fatalf("groups = %d, want %d", len(got), len(want))
		}
		for _, g := range got {
			if want[g.Year] != g.Total {
				t.Errorf("yr %s: got %d, want %d", g.Year, g.Total, want[g.Year])
			}
		}
	})

	t.Run("seasonal", func(t *testing.T) {
		want := queryTotals(t, db, `SELECT season, SUM(cnt) FROM days GROUP BY season`)
		got := analysis.SeasonalTotals(ds.Records)
		if len(got) != len(want) {
			t.Fatalf("groups = %d, want %d", len(got), len(want))
		}
		for _, g := range got {
			if want[g.Season] != g.Total {
				t.Errorf("season %s: got %d, want %d", g.Season, g.Total, want[g.Season])
			}
		}
	})

	t.Run("monthly", func(t *testing.T) {
		casual := queryTotals(t, db, `SELECT CAST(mnth AS TEXT), SUM(casual) FROM days GROUP BY mnth`)
		registered := queryTotals(t, db, `SELECT CAST(mnth AS TEXT), SUM(registered) FROM days GROUP BY mnth`)
		got := analysis.MonthlyUserTypes(ds.Records)
		if len(got) != 2*len(casual) {
			t.Fatalf("rows = %d, want %d", len(got), 2*len(casual))
		}
		for i, g := range got {
			if i > 0 && got[i-1].Month > g.Month {
				t.Fatalf("months out of order at %d", i)
			}
			want := casual
			if g.UserType == models.UserRegistered {
				want = registered
			}
			if key := strconv.Itoa(g.Month); want[key] != g.Count {
				t.Errorf("month %d %s: got %d, want %d", g.Month, g.UserType, g.Count, want[key])
			}
		}
	})

	t.Run("working day per selection", func(t *testing.T) {
		for _, sel := range []models.FilterSelection{
			{Year: "0", Season: models.AllSeasons},
			{Year: "1", Season: "3"},
			{Year: "1", Season: "9"},
		} {
			where := `WHERE yr = ?`
			args := []any{sel.Year}
			if sel.Season != models.AllSeasons {
				where += ` AND season = ?`
				args = append(args, sel.Season)
			}
			casual := queryTotals(t, db, `SELECT CAST(workingday AS TEXT), SUM(casual) FROM days `+where+` GROUP BY workingday`, args...)
			registered := queryTotals(t, db, `SELECT CAST(workingday AS TEXT), SUM(registered) FROM days `+where+` GROUP BY workingday`, args...)

			got := analysis.UserTypesByWorkingDay(analysis.Filter(ds, sel))
			if len(got) != 2*len(casual) {
				t.Fatalf("%+v: rows = %d, want %d", sel, len(got), 2*len(casual))
			}
			for _, g := range got {
				want := casual
				if g.UserType == models.UserRegistered {
					want = registered
				}
				if key := strconv.Itoa(g.WorkingDay); want[key] != g.Count {
					t.Errorf("%+v: workingday %d %s: got %d, want %d", sel, g.WorkingDay, g.UserType, g.Count, want[key])
				}
			}
		}
	})
}
