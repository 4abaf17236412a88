// Package artist orchestrates an art run: it renders the configured text into
// a bitmap, maps the bitmap onto calendar dates, provisions the working copy,
// and drives the dated commits.
package artist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/bitmap"
	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/font"
	datesUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/dates"
	gitUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/git"
)

// dataFile is the file each art commit appends to inside the working copy.
const dataFile = "art_data.txt"

// commitHour is the fixed time-of-day stamped on every commit.
const commitHour = 12

// Result reports how an execution went, date by date.
type Result struct {
	Successful int
	Failed     int
}

// Render composes the configured text and maps it onto the configured start
// date. It is the pure half of a run; nothing here touches the repository.
func Render(cfg Config) (bitmap.Bitmap, []time.Time, error) {
	bm, err := font.Compose(cfg.Text, cfg.LetterSpacing)
	if err != nil {
		return bitmap.Bitmap{}, nil, fmt.Errorf("failed to render %q: %w", cfg.Text, err)
	}
	if cfg.StartDate == nil {
		return bitmap.Bitmap{}, nil, fmt.Errorf("no start date resolved for %q", cfg.Text)
	}
	return bm, datesUtil.BitmapToDates(bm, *cfg.StartDate), nil
}

// Run executes a full art run for an already-validated configuration:
//
//  1. Render the text and map it onto dates.
//  2. Ensure the working copy exists (clone-if-absent).
//  3. Create the dated commits.
//  4. Push, unless auto-push is off.
//
// A failing commit on one date never aborts the remaining dates; Run only
// fails outright when the repository itself is unusable.
func Run(cfg Config) error {
	// 1. Render
	_, dates, err := Render(cfg)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		log.Warn().Msg("Pattern produced no dates, nothing to commit")
		return nil
	}

	// 2. Provision working copy
	repoPath := cfg.RepoPath(".")
	if err := gitUtil.CloneIfAbsent(repoPath, cfg.CloneURL()); err != nil {
		return fmt.Errorf("failed to provision repository: %w", err)
	}

	// 3. Create commits
	log.Info().Msgf("Creating commits for %d days...", len(dates))
	res := CreateCommits(repoPath, dates, cfg.CommitsPerDay, cfg.CommitMessageTemplate)
	total := len(dates) * cfg.CommitsPerDay
	log.Info().Msgf("Created %d/%d commits (%d failed)", res.Successful, total, res.Failed)

	// 4. Push
	if !cfg.AutoPush {
		log.Info().Msg("Skipping push (auto-push disabled)")
		return nil
	}
	log.Info().Msgf("Pushing to %s/%s...", cfg.RemoteName, cfg.BranchName)
	if err := gitUtil.Push(repoPath, cfg.RemoteName, cfg.BranchName); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	log.Info().Msgf("Check the contribution graph at https://github.com/%s", cfg.Username)

	return nil
}

// CreateCommits creates commitsPerDay commits for each date, in order. Each
// commit appends one unique line to the data file so every commit carries a
// real change. Dates are independent: a failure is counted and the loop moves
// on. Progress (percentage and ETA) is logged as the run advances.
func CreateCommits(repoPath string, dates []time.Time, commitsPerDay int, messageTemplate string) Result {
	var res Result
	total := len(dates) * commitsPerDay
	done := 0

	for _, date := range dates {
		when := date.Add(commitHour * time.Hour)
		for i := 0; i < commitsPerDay; i++ {
			started := time.Now()
			if err := createOneCommit(repoPath, when, commitMessage(messageTemplate, date, i)); err != nil {
				log.Error().Err(err).Msgf("Commit for %s failed", date.Format("2006-01-02"))
				res.Failed++
			} else {
				res.Successful++
			}

			done++
			elapsed := time.Since(started)
			eta := elapsed * time.Duration(total-done)
			log.Info().Msgf("Commits: %d/%d -- %.1f%% -- ETA: %s", done, total, float64(done)/float64(total)*100, eta.Round(time.Second))
		}
	}

	return res
}

// createOneCommit appends a unique line, stages it, and commits dated at when.
func createOneCommit(repoPath string, when time.Time, message string) error {
	f, err := os.OpenFile(filepath.Join(repoPath, dataFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	_, writeErr := f.WriteString(uuid.NewString() + "\n")
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to append data: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close data file: %w", closeErr)
	}

	if err := gitUtil.StagePath(repoPath, dataFile); err != nil {
		return err
	}
	return gitUtil.CommitDated(repoPath, message, when)
}

// commitMessage expands the template's {date} and {index} placeholders, or
// falls back to the dated default.
func commitMessage(template string, date time.Time, index int) string {
	if template == "" {
		return date.Format("2006-01-02 15:04:05")
	}
	msg := strings.ReplaceAll(template, "{date}", date.Format("2006-01-02"))
	return strings.ReplaceAll(msg, "{index}", strconv.Itoa(index))
}
