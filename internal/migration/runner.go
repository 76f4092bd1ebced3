package migration

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// Step migrates a store from one schema version to the next.
// Migrate receives a private copy of the store and returns the migrated
// store; it must not retain the argument.
type Step struct {
	From        string
	To          string
	Description string
	Migrate     func(Store) (Store, error)
}

// Runner applies a fixed chain of steps.
type Runner struct {
	steps  []Step
	byFrom map[string]int
	logger *zap.Logger
	now    func() time.Time
}

// NewRunner builds a runner over the given steps. The chain is checked
// once here: versions must be semantic versions, each step must move to a
// greater version, and no two steps may migrate from the same version.
func NewRunner(logger *zap.Logger, steps ...Step) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		steps:  make([]Step, 0, len(steps)),
		byFrom: make(map[string]int, len(steps)),
		logger: logger,
		now:    time.Now,
	}

	for _, s := range steps {
		if err := r.register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Runner) register(s Step) error {
	from, to := canonical(s.From), canonical(s.To)

	switch {
	case !semver.IsValid(from):
		return &RegistrationError{From: s.From, To: s.To, Reason: "from is not a semantic version"}
	case !semver.IsValid(to):
		return &RegistrationError{From: s.From, To: s.To, Reason: "to is not a semantic version"}
	case semver.Compare(from, to) >= 0:
		return &RegistrationError{From: s.From, To: s.To, Reason: "to must be greater than from"}
	case s.Migrate == nil:
		return &RegistrationError{From: s.From, To: s.To, Reason: "no migrate function"}
	}

	if _, dup := r.byFrom[s.From]; dup {
		return &RegistrationError{From: s.From, To: s.To, Reason: "another step already migrates from " + s.From}
	}

	r.byFrom[s.From] = len(r.steps)
	r.steps = append(r.steps, s)

	return nil
}

// canonical prefixes the "v" the semver package expects.
func canonical(v string) string {
	return "v" + v
}

// Steps returns a copy of the registered steps in declaration order.
func (r *Runner) Steps() []Step {
	return append([]Step(nil), r.steps...)
}

// Latest returns the version a store at from ends up at after Run.
func (r *Runner) Latest(from string) string {
	version := from
	for {
		i, ok := r.byFrom[version]
		if !ok {
			return version
		}

		version = r.steps[i].To
	}
}

// Run migrates a copy of store forward until no step applies and returns
// the migrated copy. The argument is never modified. A store already at
// the newest version is returned as an equal copy with no history added.
func (r *Runner) Run(store Store) (Store, error) {
	current := store.Clone()
	version := current.Version()

	var completed []string

	for {
		i, ok := r.byFrom[version]
		if !ok {
			break
		}

		step := r.steps[i]

		next, err := r.apply(step, current)
		if err == nil {
			err = next.record(HistoryEntry{
				From:        step.From,
				To:          step.To,
				Timestamp:   r.now().UTC().Format(time.RFC3339),
				Description: step.Description,
			})
		}

		if err != nil {
			r.logger.Error("migration step failed",
				zap.String("from", step.From),
				zap.String("to", step.To),
				zap.Error(err))

			return nil, &MigrationStepError{
				FromVersion: step.From,
				ToVersion:   step.To,
				Description: step.Description,
				Completed:   completed,
				Cause:       err,
			}
		}

		r.logger.Info("migrated store",
			zap.String("from", step.From),
			zap.String("to", step.To),
			zap.String("description", step.Description))

		current = next
		version = step.To
		completed = append(completed, version)
	}

	return current, nil
}

// apply runs one step on a private copy, converting a panic into an error.
func (r *Runner) apply(step Step, store Store) (next Store, err error) {
	defer func() {
		if p := recover(); p != nil {
			next, err = nil, fmt.Errorf("panic: %v", p)
		}
	}()

	next, err = step.Migrate(store.Clone())
	if err != nil {
		return nil, err
	}

	if next == nil {
		return nil, fmt.Errorf("step returned no store")
	}

	return next, nil
}
