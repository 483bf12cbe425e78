package errhandle

import (
	"errors"
	"strings"
)

type appendedErrors []error

func (e appendedErrors) Error() string {
	sbuilder := strings.Builder{}
	for i, err := range e {
		sbuilder.WriteString(err.Error())
		if i != len(e)-1 {
			sbuilder.WriteString("; ")
		}
	}
	return sbuilder.String()
}

// Is reports whether any of the appended errors matches target.
func (e appendedErrors) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// AppendError merges errs into one error, skipping nils. Returns nil if no error is left.
func AppendError(errs ...error) error {
	var merged appendedErrors
	for _, err := range errs {
		if err == nil {
			continue
		}

		if inner, ok := err.(appendedErrors); ok {
			merged = append(merged, inner...)
			continue
		}

		merged = append(merged, err)
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}
