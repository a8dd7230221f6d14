package scaffold

import "errors"

// ErrDestinationConflict reports a destination that already has content when
// overwrite was not requested. Callers match it with errors.Is to select the
// conflict exit code.
var ErrDestinationConflict = errors.New("destination is not empty")
