package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks the user questions with huh forms.
type FormPrompter struct{}

func NewFormPrompter() *FormPrompter {
	return &FormPrompter{}
}

// ChooseNextStep asks what to do with the results. Aborting the form counts
// as choosing StepAbort.
func (p *FormPrompter) ChooseNextStep(ctx context.Context) (Step, error) {
	step := StepPrint

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Step]().
				Title("Choose an option:").
				Options(
					huh.NewOption("Print results in this terminal", StepPrint),
					huh.NewOption("Save results to files", StepSave),
					huh.NewOption("Abort", StepAbort),
				).
				Value(&step),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return StepAbort, nil
		}
		return "", err
	}

	return step, nil
}

// Destination asks where to save one result set. An empty answer selects
// defaultPath.
func (p *FormPrompter) Destination(ctx context.Context, label, defaultPath string) (string, error) {
	var dest string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(DestinationPrompt(label, defaultPath)).
				Placeholder(defaultPath).
				Value(&dest),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}

	if dest = strings.TrimSpace(dest); dest == "" {
		return defaultPath, nil
	}
	return dest, nil
}

func DestinationPrompt(label, defaultPath string) string {
	return fmt.Sprintf("Enter file destination to save %s or press enter to select default (%s):", label, defaultPath)
}
