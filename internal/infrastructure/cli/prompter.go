package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/doeshing/mealtrack/internal/domain"
)

// Prompter collects interactive input from stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints the prompt and reads one trimmed line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadList reads a comma-separated line and splits it into trimmed entries.
// An empty line yields nil.
func (p *Prompter) ReadList(prompt string) ([]string, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return nil, err
	}
	return splitList(line), nil
}

// ReadOptionalInt reads an optional non-negative integer. A blank or
// non-numeric line yields nil.
func (p *Prompter) ReadOptionalInt(prompt string) (*int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(line)
	if err != nil || value < 0 {
		return nil, nil
	}
	return &value, nil
}

// SelectMealType shows the numbered meal-type choices and reads a selection.
// Unrecognized input falls back to lunch.
func (p *Prompter) SelectMealType(includeSnack bool) (domain.MealType, error) {
	fmt.Fprintln(p.out, "\nSelect a meal type:")
	fmt.Fprintln(p.out, "1. Breakfast")
	fmt.Fprintln(p.out, "2. Lunch")
	fmt.Fprintln(p.out, "3. Dinner")
	limit := 3
	if includeSnack {
		fmt.Fprintln(p.out, "4. Snack")
		limit = 4
	}

	choice, err := p.ReadLine(fmt.Sprintf("Choice (1-%d): ", limit))
	if err != nil {
		return domain.MealTypeLunch, err
	}
	switch choice {
	case "1":
		return domain.MealTypeBreakfast, nil
	case "2":
		return domain.MealTypeLunch, nil
	case "3":
		return domain.MealTypeDinner, nil
	case "4":
		if includeSnack {
			return domain.MealTypeSnack, nil
		}
	}
	return domain.MealTypeLunch, nil
}

// splitList splits comma-separated input into trimmed non-empty entries.
func splitList(line string) []string {
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	var list []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
