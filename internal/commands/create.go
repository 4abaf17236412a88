package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/artist"
	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/preview"
	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
)

type createCommand struct{}

func init() {
	registerCommand(&createCommand{})
}

func (c *createCommand) Command() string {
	return "create"
}

func (c *createCommand) Description() string {
	return "Create contribution-graph art: create <username> <repo> <text>"
}

func (c *createCommand) ValidateArgs(args map[string]any) error {
	if len(argUtil.Positionals(args)) < 3 {
		return fmt.Errorf("usage: create <username> <repo> <text>")
	}
	return nil
}

func (c *createCommand) Execute(args map[string]any) error {
	fmt.Print(preview.Banner())

	pos := argUtil.Positionals(args)
	opts, err := parseArtOptions(args)
	if err != nil {
		return err
	}

	// 1. Build configuration
	cfg := artist.NewConfig(pos[0], pos[1])
	cfg.Text = pos[2]
	cfg.LetterSpacing = opts.Spacing
	cfg.CommitsPerDay = opts.Commits
	cfg.WeeksInAdvance = opts.WeeksInAdvance
	cfg.AutoCalculateStart = opts.StartDate == nil
	cfg.PreviewOnly = argUtil.Bool(args, "preview")
	cfg.AutoPush = !argUtil.Bool(args, "no-push")
	if protocol, ok := argUtil.String(args, "protocol"); ok {
		cfg.Protocol = protocol
	}
	start := opts.resolveStart()
	cfg.StartDate = &start

	// 2. Validate, reporting every violation at once
	if violations := cfg.Validate(); len(violations) > 0 {
		log.Error().Msg("Configuration validation failed:")
		for _, v := range violations {
			log.Error().Msgf("  - %s", v)
		}
		return fmt.Errorf("invalid configuration (%d problems)", len(violations))
	}

	// 3. Render and preview
	bm, dates, err := artist.Render(cfg)
	if err != nil {
		return err
	}
	fmt.Print(preview.Full(cfg.Text, bm, dates, cfg.CommitsPerDay))

	if cfg.PreviewOnly {
		log.Info().Msg("Preview mode - no commits will be created")
		return nil
	}

	// 4. Confirm
	if !argUtil.Bool(args, "y", "yes") && !confirm("Proceed with creating commits? (y/N): ") {
		log.Info().Msg("Cancelled by user")
		return nil
	}

	// 5. Execute
	return artist.Run(cfg)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(response), "y")
}
