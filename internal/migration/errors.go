package migration

import "fmt"

// MigrationStepError reports a step that failed. Completed lists the
// versions reached before the failure.
type MigrationStepError struct {
	FromVersion string
	ToVersion   string
	Description string
	Completed   []string
	Cause       error
}

func (e *MigrationStepError) Error() string {
	return fmt.Sprintf("migration %s -> %s (%s) failed: %v",
		e.FromVersion, e.ToVersion, e.Description, e.Cause)
}

func (e *MigrationStepError) Unwrap() error {
	return e.Cause
}

// RegistrationError reports a step that cannot join the chain.
type RegistrationError struct {
	From   string
	To     string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("invalid migration step %s -> %s: %s", e.From, e.To, e.Reason)
}
