package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/commands"
	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStdout(),
		TimeFormat: "2006-01-02 15:04:05",
	})

	// Exit 130 on Ctrl-C, the shell convention for SIGINT.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Println("\nInterrupted by user")
		os.Exit(130)
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	commandName := os.Args[1]
	command, ok := commands.GetCommand(commandName)
	if !ok {
		fmt.Printf("Unknown command: %s\n\n", commandName)
		printUsage()
		os.Exit(1)
	}

	args := argUtil.ParseArg(os.Args[2:])
	runner := commands.CommandRunner{}
	if err := runner.Run(command, args); err != nil {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: gitcanvas <command> [args]")
	fmt.Println("\nAvailable commands:")
	for _, cmdName := range commands.ListCommands() {
		cmd, _ := commands.GetCommand(cmdName)
		fmt.Printf("  %-12s %s\n", cmdName, cmd.Description())
	}
}
