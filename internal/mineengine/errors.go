package mineengine

import "github.com/pkg/errors"

// ErrDecodeFailure is the sentinel error for the engine's one taxonomy
// kind that is actually surfaced as a Go error: Load wraps it with
// errors.Wrap/errors.Wrapf at the detection site so callers can both
// errors.Is against the sentinel and read positional context.
//
// RefusedReveal and OutOfBounds are the other two taxonomy kinds, but
// per the external interface they are negative results, not errors:
// RevealCell/Get/ToggleFlag report them as a plain (T, bool) or
// bounds-checked no-op, exactly like Option::None in the source this
// engine is modeled on. There is no sentinel error for them because
// nothing in the API ever returns a Go error for a refused or
// out-of-bounds reveal.
var ErrDecodeFailure = errors.New("mineengine: failed to decode field")
