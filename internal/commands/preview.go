package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/font"
	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/preview"
	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
	datesUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/dates"
)

type previewCommand struct{}

func init() {
	registerCommand(&previewCommand{})
}

func (p *previewCommand) Command() string {
	return "preview"
}

func (p *previewCommand) Description() string {
	return "Preview how text will look in the contribution graph"
}

func (p *previewCommand) ValidateArgs(args map[string]any) error {
	if len(argUtil.Positionals(args)) < 1 {
		return fmt.Errorf("usage: preview <text>")
	}
	return nil
}

func (p *previewCommand) Execute(args map[string]any) error {
	fmt.Print(preview.Banner())

	text := argUtil.Positionals(args)[0]
	opts, err := parseArtOptions(args)
	if err != nil {
		return err
	}

	bm, err := font.Compose(text, opts.Spacing)
	if err != nil {
		return err
	}

	dates := datesUtil.BitmapToDates(bm, opts.resolveStart())
	fmt.Print(preview.Full(text, bm, dates, opts.Commits))
	return nil
}
