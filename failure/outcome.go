// SPDX-License-Identifier: MIT

package failure

import "fmt"

// Kind discriminates outcomes.
type Kind int

const (
	KindOk Kind = iota
	KindMissingData
	KindUnexpected
)

// String returns the kind name used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindMissingData:
		return "missing_data"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of ingesting one file. The set of implementations
// is closed: Ok, MissingData, Unexpected.
type Outcome interface {
	Kind() Kind
	outcome()
}

// Ok carries the successfully decoded payload of a file.
type Ok[T any] struct {
	Value T
}

// MissingData reports a file without the expected content.
type MissingData struct {
	Reason string
}

// Unexpected reports any other per-file error.
type Unexpected struct {
	Err error
}

// Kind implements Outcome.
func (Ok[T]) Kind() Kind { return KindOk }

// Kind implements Outcome.
func (MissingData) Kind() Kind { return KindMissingData }

// Kind implements Outcome.
func (Unexpected) Kind() Kind { return KindUnexpected }

func (Ok[T]) outcome()       {}
func (MissingData) outcome() {}
func (Unexpected) outcome()  {}

func (m MissingData) Error() string { return "missing data: " + m.Reason }

func (u Unexpected) Error() string { return fmt.Sprintf("unexpected: %v", u.Err) }

// Unwrap returns the underlying error.
func (u Unexpected) Unwrap() error { return u.Err }
