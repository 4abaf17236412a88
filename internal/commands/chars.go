package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/font"
	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/preview"
	argUtil "github.com/kuchuk-borom-debbarma/GitCanvas/internal/util/arg"
)

type charsCommand struct{}

func init() {
	registerCommand(&charsCommand{})
}

func (charsCommand) Command() string {
	return "chars"
}

func (charsCommand) Description() string {
	return "Show supported characters"
}

func (charsCommand) ValidateArgs(args map[string]any) error {
	return nil
}

func (charsCommand) Execute(args map[string]any) error {
	fmt.Print(preview.Banner())

	chars := font.SupportedChars()

	var upper, lower, digits, special []string
	for _, r := range chars {
		switch {
		case unicode.IsUpper(r):
			upper = append(upper, string(r))
		case unicode.IsLower(r):
			lower = append(lower, string(r))
		case unicode.IsDigit(r):
			digits = append(digits, string(r))
		case r != ' ':
			special = append(special, string(r))
		}
	}

	fmt.Println("Supported Characters:")
	fmt.Println("Uppercase: " + strings.Join(upper, " "))
	fmt.Println("Lowercase: " + strings.Join(lower, " "))
	fmt.Println("Numbers:   " + strings.Join(digits, " "))
	fmt.Println("Special:   " + strings.Join(special, " "))
	fmt.Printf("\nTotal: %d characters supported\n", len(chars))

	if !argUtil.Bool(args, "show-all") {
		return nil
	}

	for _, r := range chars {
		if r == ' ' {
			continue
		}
		g, err := font.Lookup(r)
		if err != nil {
			return err
		}
		fmt.Printf("\nCharacter: %q\n", r)
		fmt.Print(preview.Pattern(g))
	}
	return nil
}
