package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/artist"
	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
)

const defaultConfigFile = "gitcanvas-config.json"

type configCommand struct{}

func init() {
	registerCommand(&configCommand{})
}

func (configCommand) Command() string {
	return "config"
}

func (configCommand) Description() string {
	return "Configuration management: config --example [--output PATH]"
}

func (configCommand) ValidateArgs(args map[string]any) error {
	if !argUtil.Bool(args, "example") {
		return fmt.Errorf("config command requires --example flag")
	}
	return nil
}

func (configCommand) Execute(args map[string]any) error {
	path, ok := argUtil.String(args, "output")
	if !ok {
		path = defaultConfigFile
	}

	if err := artist.WriteExampleConfig(path); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	log.Info().Msgf("Example configuration saved to %s", path)
	return nil
}
