package navps

import (
	"errors"
	"fmt"
	"time"

	"github.com/sells-group/navps-cli/internal/model"
)

// Kind classifies a report failure.
type Kind string

const (
	// KindFetch means the report could not be retrieved for the date.
	KindFetch Kind = "fetch"
	// KindParse means the document could not be parsed as markup.
	KindParse Kind = "parse"
	// KindClassification means a known fund-type label is missing from the
	// document, which signals a change in the report format.
	KindClassification Kind = "classification"
	// KindIntegrity means a data row does not line up with the header row.
	KindIntegrity Kind = "integrity"
)

// Error is returned by every failing step of report construction.
type Error struct {
	Kind Kind
	Date time.Time
	Err  error
}

func (e *Error) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("navps %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("navps %s (%s): %v", e.Kind, e.Date.Format(model.DateLayout), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err (or any error in its chain) is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func withDate(err error, date time.Time) error {
	var e *Error
	if errors.As(err, &e) && e.Date.IsZero() {
		e.Date = date
	}
	return err
}
