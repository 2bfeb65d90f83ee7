package mines

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by constructors when an input breaks the
// range or shape rules of a [Cell], [Board] or [Move].
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
