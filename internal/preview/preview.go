// Package preview renders the banner, the pattern, and the calendar view the
// CLI shows before any commit is made.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/bitmap"
	datesUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/dates"
)

const (
	filledCell = "█"
	emptyCell  = "·"
)

var dayLabels = [bitmap.GridHeight]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Banner returns the styled program banner.
func Banner() string {
	return bannerStyle.Render("GitCanvas — paint your contribution graph") + "\n"
}

// Pattern renders the bitmap as rows of filled/empty cells.
func Pattern(bm bitmap.Bitmap) string {
	var sb strings.Builder
	for row := 0; row < bm.Rows(); row++ {
		for col := 0; col < bm.Cols(); col++ {
			if bm.At(row, col) == 1 {
				sb.WriteString(filledStyle.Render(filledCell))
			} else {
				sb.WriteString(emptyStyle.Render(emptyCell))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Calendar renders the bitmap as the contribution calendar would show it:
// weekday labels down the left, week numbers across the top.
func Calendar(bm bitmap.Bitmap) string {
	if bm.Cols() == 0 {
		return labelStyle.Render("Empty pattern") + "\n"
	}

	var sb strings.Builder

	// Week header, one marker per 7 columns
	sb.WriteString("    ")
	for i := 0; i < bm.Cols(); i += 7 {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("W%-2d    ", i/7+1)))
	}
	sb.WriteString("\n")

	for row := 0; row < bm.Rows(); row++ {
		sb.WriteString(labelStyle.Render(dayLabels[row]) + " ")
		for col := 0; col < bm.Cols(); col++ {
			if bm.At(row, col) == 1 {
				sb.WriteString(filledStyle.Render(filledCell))
			} else {
				sb.WriteString(emptyStyle.Render(emptyCell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Summary reports the dimensions, the date range, and the commit counts for
// a rendered pattern.
func Summary(text string, bm bitmap.Bitmap, dates []time.Time, commitsPerDay int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Preview of %q", text)) + "\n")
	sb.WriteString(fmt.Sprintf("Dimensions: %d columns x %d rows\n", bm.Cols(), bm.Rows()))

	if len(dates) == 0 {
		sb.WriteString("No commit dates\n")
		return sb.String()
	}

	info := datesUtil.Range(dates)
	sb.WriteString(fmt.Sprintf("Start date: %s\n", info.Start.Format("2006-01-02 (Monday)")))
	sb.WriteString(fmt.Sprintf("End date:   %s\n", info.End.Format("2006-01-02 (Monday)")))
	sb.WriteString(fmt.Sprintf("Duration:   %d days (~%d weeks)\n", info.TotalDays, info.Weeks))
	sb.WriteString(fmt.Sprintf("Commit days: %d\n", info.CommitDays))
	sb.WriteString(fmt.Sprintf("Commits per day: %d\n", commitsPerDay))
	sb.WriteString(fmt.Sprintf("Total commits: %d\n", info.CommitDays*commitsPerDay))

	return sb.String()
}

// Full combines the pattern, the calendar view, and the summary into the
// complete pre-run preview.
func Full(text string, bm bitmap.Bitmap, dates []time.Time, commitsPerDay int) string {
	rule := ruleStyle.Render(strings.Repeat("─", 60)) + "\n"

	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(Pattern(bm))
	sb.WriteString(rule)
	sb.WriteString(Calendar(bm))
	sb.WriteString(rule)
	sb.WriteString(Summary(text, bm, dates, commitsPerDay))
	sb.WriteString(rule)
	return sb.String()
}
