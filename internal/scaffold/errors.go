package scaffold

import (
	"errors"
	"fmt"

	"github.com/Dash-ajou/dashgen/internal/platform"
)

// Sentinel categories matched with errors.Is.
var (
	ErrPermission   = errors.New("permission denied")
	ErrExhausted    = errors.New("storage exhausted")
	ErrKindConflict = errors.New("path exists with a different type")
)

// Operations reported by OpError.
const (
	OpStat   = "stat"
	OpMkdir  = "mkdir"
	OpCreate = "create"
)

// OpError names the filesystem operation and path that halted a run.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the category sentinel (if any) and the cause, so
// callers can match ErrPermission as well as fs.ErrPermission.
func (e *OpError) Unwrap() []error {
	switch platform.Classify(e.Err) {
	case platform.ClassPermission:
		return []error{ErrPermission, e.Err}
	case platform.ClassExhausted:
		return []error{ErrExhausted, e.Err}
	default:
		return []error{e.Err}
	}
}
