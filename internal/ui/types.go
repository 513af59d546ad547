package ui

// Step is the action chosen once the summary has been shown.
type Step string

const (
	StepPrint Step = "print"
	StepSave  Step = "save"
	StepAbort Step = "abort"
)

func ParseStep(s string) (Step, bool) {
	switch st := Step(s); st {
	case StepPrint, StepSave, StepAbort:
		return st, true
	}
	return "", false
}

type section struct {
	title string
	rows  []string
}
