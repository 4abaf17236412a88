package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
	datesUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/dates"
)

// artOptions are the flags shared by the create and preview commands.
type artOptions struct {
	StartDate      *time.Time
	Spacing        int
	Commits        int
	WeeksInAdvance int
}

// parseArtOptions reads the shared flags, resolving --start-date against the
// YYYY-MM-DD format. A nil StartDate means auto-calculation.
func parseArtOptions(args map[string]any) (artOptions, error) {
	opts := artOptions{}

	var err error
	if opts.Spacing, err = argUtil.Int(args, 1, "spacing"); err != nil {
		return opts, err
	}
	if opts.Commits, err = argUtil.Int(args, 1, "commits"); err != nil {
		return opts, err
	}
	if opts.WeeksInAdvance, err = argUtil.Int(args, 1, "weeks-advance"); err != nil {
		return opts, err
	}

	if raw, ok := argUtil.String(args, "start-date"); ok {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return opts, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		opts.StartDate = &parsed
	}

	return opts, nil
}

// resolveStart returns the explicit start date or calculates the optimal one.
func (o artOptions) resolveStart() time.Time {
	if o.StartDate != nil {
		return *o.StartDate
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := datesUtil.OptimalStartDate(today, o.WeeksInAdvance)
	log.Info().Msgf("Calculated optimal start date: %s (%s)", start.Format("2006-01-02"), start.Weekday())
	return start
}
