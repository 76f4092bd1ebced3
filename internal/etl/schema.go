package etl

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// schemaValidate checks the structural shape of loaded documents.
// Cross-field rules (subject cardinality, alias uniqueness) are the
// header view validator's job, not this one's.
var schemaValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSchema checks every header view against the struct tags of the
// model and returns all violations joined into one error.
func ValidateSchema(hvs HeaderViews) error {
	var errs []error

	for _, name := range hvs.Filenames() {
		hv := hvs[name]

		err := schemaValidate.Struct(&hv)
		if err == nil {
			continue
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%s: %w", name, err)
		}

		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%s: %s fails %q (value %v)",
				name, fe.Namespace(), fe.ActualTag(), fe.Value()))
		}
	}

	return errors.Join(errs...)
}
