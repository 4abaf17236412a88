// Package dates holds the calendar arithmetic for the contribution grid:
// Sunday alignment, start-date calculation, and the column-major sweep that
// turns a bitmap into the ordered list of commit dates.
package dates

import (
	"time"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/bitmap"
)

// NextSunday returns the next Sunday strictly after from. If from is itself
// a Sunday the result is seven days later, so the returned date is always in
// the future relative to from.
func NextSunday(from time.Time) time.Time {
	daysUntil := (7 - int(from.Weekday())) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return from.AddDate(0, 0, daysUntil)
}

// OptimalStartDate advances target by weeksInAdvance weeks and then snaps to
// the next Sunday. The grid's row 0 is Sunday, so a pattern starting on the
// returned date renders without vertical shift, and the lookahead keeps the
// whole run in the future across the preview/confirm gap.
func OptimalStartDate(target time.Time, weeksInAdvance int) time.Time {
	return NextSunday(target.AddDate(0, 0, 7*weeksInAdvance))
}

// BitmapToDates walks the bitmap column-major (each column is one week, each
// row one weekday) and returns the dates of the 1-cells in order. The date
// under the cursor advances for every cell regardless of value, so the cell
// at (row, col) always maps to start + 7*col + row days and the output is
// strictly increasing. An empty bitmap yields an empty slice.
//
// The mapper does not care what weekday start falls on; a misaligned start
// merely shifts the rendered pattern, it never errors.
func BitmapToDates(bm bitmap.Bitmap, start time.Time) []time.Time {
	var out []time.Time

	current := start
	for col := 0; col < bm.Cols(); col++ {
		for row := 0; row < bm.Rows(); row++ {
			if bm.At(row, col) == 1 {
				out = append(out, current)
			}
			current = current.AddDate(0, 0, 1)
		}
	}
	return out
}

// RangeInfo summarises a commit date sequence for preview output.
type RangeInfo struct {
	Start      time.Time
	End        time.Time
	TotalDays  int
	CommitDays int
	Weeks      int
}

// Range computes the RangeInfo for a date sequence. The sequence produced by
// BitmapToDates is already sorted; Range relies on that.
func Range(dates []time.Time) RangeInfo {
	if len(dates) == 0 {
		return RangeInfo{}
	}

	start := dates[0]
	end := dates[len(dates)-1]
	totalDays := int(end.Sub(start).Hours()/24) + 1

	return RangeInfo{
		Start:      start,
		End:        end,
		TotalDays:  totalDays,
		CommitDays: len(dates),
		Weeks:      totalDays / 7,
	}
}

// FormatGit renders a date the way git expects author/committer timestamps.
func FormatGit(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
