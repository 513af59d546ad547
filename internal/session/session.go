package session

import (
	"context"
	"fmt"

	"github.com/corpeningc/compare-rows/internal/compare"
	"github.com/corpeningc/compare-rows/internal/files"
	"github.com/corpeningc/compare-rows/internal/logger"
	"github.com/corpeningc/compare-rows/internal/ui"
)

type State int

const (
	StateComparing State = iota
	StateAwaitingNextStep
	StatePrinting
	StateAwaitingDestinations
	StateSaving
	StateDone
)

func (s State) String() string {
	switch s {
	case StateComparing:
		return "comparing"
	case StateAwaitingNextStep:
		return "awaiting-next-step"
	case StatePrinting:
		return "printing"
	case StateAwaitingDestinations:
		return "awaiting-destinations"
	case StateSaving:
		return "saving"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config is built once per invocation from the command line.
type Config struct {
	Options compare.Options

	// Action skips the next step prompt when set.
	Action ui.Step
	// Interactive is false when stdin is not a terminal. Without a preset
	// Action results are then printed, and destinations fall back to their
	// defaults.
	Interactive bool
	// Pager shows printed results in a full-screen viewer.
	Pager bool

	CommonOut string
	DiffAOut  string
	DiffBOut  string
}

// Prompter asks the user for decisions. Each call blocks until answered.
type Prompter interface {
	ChooseNextStep(ctx context.Context) (ui.Step, error)
	Destination(ctx context.Context, label, defaultPath string) (string, error)
}

type Viewer interface {
	Show(res compare.Result, pathA, pathB string) error
}

// Comparison is what the comparing stage produces.
type Comparison struct {
	PathA  string
	PathB  string
	LinesA int
	LinesB int
	Result compare.Result
}

type destination struct {
	label    string
	fallback string
	preset   string
	rows     []string
	path     string
}

// Session drives one comparison from input files to printed or saved
// results.
type Session struct {
	cfg      Config
	store    *files.Store
	printer  *ui.Printer
	prompter Prompter
	viewer   Viewer

	state State
	dests []destination
}

func New(cfg Config, store *files.Store, printer *ui.Printer, prompter Prompter, viewer Viewer) *Session {
	return &Session{
		cfg:      cfg,
		store:    store,
		printer:  printer,
		prompter: prompter,
		viewer:   viewer,
		state:    StateComparing,
	}
}

func (s *Session) State() State {
	return s.state
}

// Compare checks both inputs, reads them and partitions their lines.
func (s *Session) Compare(ctx context.Context, fileA, fileB string) (*Comparison, error) {
	log := logger.FromContext(ctx)

	if fileA == "" {
		return nil, &UsageError{Argument: "1st"}
	}
	if fileB == "" {
		return nil, &UsageError{Argument: "2nd"}
	}
	pathA := s.store.Abs(fileA)
	pathB := s.store.Abs(fileB)
	if !s.store.Exists(pathA) {
		return nil, &NotFoundError{Path: pathA}
	}
	if !s.store.Exists(pathB) {
		return nil, &NotFoundError{Path: pathB}
	}

	contentA, contentB := s.store.ReadPair(ctx, pathA, pathB)
	linesA := compare.SplitLines(contentA)
	linesB := compare.SplitLines(contentB)
	log.Debug("read input files", "a", pathA, "a_lines", len(linesA), "b", pathB, "b_lines", len(linesB))

	opts := s.cfg.Options
	res := compare.Partition(compare.Normalize(linesA, &opts), compare.Normalize(linesB, &opts), &opts)
	log.Debug("partitioned lines",
		"common", len(res.Common), "diff_a", len(res.DiffA), "diff_b", len(res.DiffB),
		"trim", opts.Trim, "ignorecase", opts.IgnoreCase, "contains", opts.Contains)

	return &Comparison{
		PathA:  pathA,
		PathB:  pathB,
		LinesA: len(linesA),
		LinesB: len(linesB),
		Result: res,
	}, nil
}

// Run compares fileA with fileB, reports the summary, then prints or saves
// the results as the user decides.
func (s *Session) Run(ctx context.Context, fileA, fileB string) error {
	log := logger.FromContext(ctx)

	cmp, err := s.Compare(ctx, fileA, fileB)
	if err != nil {
		return err
	}
	s.report(cmp)
	s.transition(ctx, StateAwaitingNextStep)

	for s.state != StateDone {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch s.state {
		case StateAwaitingNextStep:
			step, err := s.nextStep(ctx)
			if err != nil {
				return fmt.Errorf("choose next step: %w", err)
			}
			log.Debug("next step chosen", "step", step)
			switch step {
			case ui.StepPrint:
				s.transition(ctx, StatePrinting)
			case ui.StepSave:
				s.transition(ctx, StateAwaitingDestinations)
			default:
				s.transition(ctx, StateDone)
			}

		case StatePrinting:
			if err := s.print(cmp); err != nil {
				return err
			}
			s.transition(ctx, StateDone)

		case StateAwaitingDestinations:
			if err := s.chooseDestinations(ctx, cmp); err != nil {
				return fmt.Errorf("choose destinations: %w", err)
			}
			s.transition(ctx, StateSaving)

		case StateSaving:
			if err := s.save(ctx); err != nil {
				return err
			}
			s.transition(ctx, StateDone)
		}
	}
	return nil
}

func (s *Session) transition(ctx context.Context, next State) {
	logger.FromContext(ctx).Debug("session state", "from", s.state, "to", next)
	s.state = next
}

func (s *Session) report(cmp *Comparison) {
	s.printer.LineCount(cmp.LinesA, cmp.PathA)
	s.printer.LineCount(cmp.LinesB, cmp.PathB)
	s.printer.Blank()
	s.printer.Summary(cmp.Result, cmp.PathA, cmp.PathB)
}

func (s *Session) nextStep(ctx context.Context) (ui.Step, error) {
	if s.cfg.Action != "" {
		return s.cfg.Action, nil
	}
	if !s.cfg.Interactive || s.prompter == nil {
		return ui.StepPrint, nil
	}
	return s.prompter.ChooseNextStep(ctx)
}

func (s *Session) print(cmp *Comparison) error {
	if s.cfg.Pager && s.viewer != nil {
		return s.viewer.Show(cmp.Result, cmp.PathA, cmp.PathB)
	}
	return s.printer.PrintResults(cmp.Result, cmp.PathA, cmp.PathB)
}

func (s *Session) chooseDestinations(ctx context.Context, cmp *Comparison) error {
	s.dests = []destination{
		{label: "the common rows", fallback: defaultCommonDestination, preset: s.cfg.CommonOut, rows: cmp.Result.Common},
		{label: diffLabel(cmp.PathA), fallback: defaultDiffDestination(cmp.PathA), preset: s.cfg.DiffAOut, rows: cmp.Result.DiffA},
		{label: diffLabel(cmp.PathB), fallback: defaultDiffDestination(cmp.PathB), preset: s.cfg.DiffBOut, rows: cmp.Result.DiffB},
	}

	for i := range s.dests {
		d := &s.dests[i]
		dest := d.preset
		if dest == "" {
			dest = d.fallback
			if s.cfg.Interactive && s.prompter != nil {
				answer, err := s.prompter.Destination(ctx, d.label, d.fallback)
				if err != nil {
					return err
				}
				dest = answer
			}
		}
		d.path = s.store.Abs(dest)
	}
	return nil
}

// save writes the result sets in order and stops at the first failure.
func (s *Session) save(ctx context.Context) error {
	log := logger.FromContext(ctx)

	paths := make([]string, 0, len(s.dests))
	for _, d := range s.dests {
		if err := s.store.Write(d.path, d.rows, nil); err != nil {
			return &WriteError{Path: d.path, Cause: err}
		}
		log.Debug("saved results", "path", d.path, "rows", len(d.rows))
		paths = append(paths, d.path)
	}

	s.printer.Saved(paths...)
	return nil
}
