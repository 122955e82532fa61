// Package confirmations implements types.Confirmer for the different ways
// nominal can ask the user to approve a plan.
package confirmations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/vivienm/nominal/pkg/types"
	"github.com/vivienm/nominal/pkg/ui"
)

// ConsoleConfirmer reads a y/N answer from In. Anything other than y or
// yes is a refusal.
type ConsoleConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements types.Confirmer
func (c *ConsoleConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(c.Out, "%s [y/N]: ", prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// PromptConfirmer asks with an interactive pterm prompt
type PromptConfirmer struct {
	printer pterm.InteractiveConfirmPrinter
}

// NewPromptConfirmer creates an interactive confirmer defaulting to no
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{
		printer: *pterm.DefaultInteractiveConfirm.WithDefaultValue(false),
	}
}

// Confirm implements types.Confirmer
func (c *PromptConfirmer) Confirm(prompt string) (bool, error) {
	ok, err := c.printer.Show(prompt)
	if err != nil {
		return false, fmt.Errorf("interactive prompt failed: %w", err)
	}
	return ok, nil
}

// AutoConfirmer answers every prompt with Answer, for runs where the user
// approved up front
type AutoConfirmer struct {
	Answer bool
}

// Confirm implements types.Confirmer
func (c AutoConfirmer) Confirm(string) (bool, error) {
	return c.Answer, nil
}

// NewForTerminal picks the interactive prompt when both in and out are
// terminals, and the line based console prompt otherwise.
func NewForTerminal(in io.Reader, out io.Writer) types.Confirmer {
	if ui.IsTerminal(out) {
		if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
			return NewPromptConfirmer()
		}
	}
	return &ConsoleConfirmer{In: in, Out: out}
}
