package datepart

import (
	"fmt"

	"github.com/leapstack-labs/datepart/pkg/temporal"
)

// UnsupportedFieldError reports a field name outside the recognized set.
type UnsupportedFieldError struct {
	Name string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field %q", e.Name)
}

// FieldNotApplicableError reports a recognized field requested on a value
// kind it is not legal for, e.g. MONTH on a day-to-second interval.
type FieldNotApplicableError struct {
	Field Field
	Kind  temporal.Kind
}

func (e *FieldNotApplicableError) Error() string {
	return fmt.Sprintf("field %s is not applicable to %s values", e.Field, e.Kind)
}
