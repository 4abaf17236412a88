package commands

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

type Command interface {
	// return the name of the command such as create
	Command() string
	// description
	Description() string
	// Validate if the required args are present
	ValidateArgs(args map[string]any) error
	// Execute the command
	Execute(args map[string]any) error
}

var commandRegistry = make(map[string]Command)

func registerCommand(command Command) {
	commandRegistry[command.Command()] = command
}

func GetCommand(name string) (Command, bool) {
	cmd, ok := commandRegistry[name]
	return cmd, ok
}

func ListCommands() []string {
	keys := make([]string, 0, len(commandRegistry))
	for k := range commandRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type CommandRunner struct{}

func (CommandRunner) Run(command Command, args map[string]any) error {
	if err := command.ValidateArgs(args); err != nil {
		fmt.Println("[ERROR]: Invalid Arguments:", err)
		return err
	}
	if err := command.Execute(args); err != nil {
		log.Error().Err(err).Msg("Execution failed")
		return err
	}
	return nil
}
