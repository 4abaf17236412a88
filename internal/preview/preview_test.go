package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/font"
	datesUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/dates"
)

func TestPatternHasOneLinePerRow(t *testing.T) {
	bm, err := font.Compose("HI", 1)
	require.NoError(t, err)

	out := Pattern(bm)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, bm.Rows())
}

func TestCalendarShowsDayLabels(t *testing.T) {
	bm, err := font.Compose("HI", 1)
	require.NoError(t, err)

	out := Calendar(bm)
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Sat")
	assert.Contains(t, out, "W1")
}

func TestCalendarEmptyPattern(t *testing.T) {
	bm, err := font.Compose("", 1)
	require.NoError(t, err)
	assert.Contains(t, Calendar(bm), "Empty pattern")
}

func TestSummary(t *testing.T) {
	bm, err := font.Compose("HI", 1)
	require.NoError(t, err)

	start := time.Date(2030, time.June, 2, 0, 0, 0, 0, time.UTC) // Sunday
	dates := datesUtil.BitmapToDates(bm, start)

	out := Summary("HI", bm, dates, 2)
	assert.Contains(t, out, "2030-06-02")
	assert.Contains(t, out, "Commit days")
	assert.Contains(t, out, "Commits per day: 2")
}
