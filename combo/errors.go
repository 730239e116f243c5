package combo

import "errors"

// ErrUnreachableTarget indicates the target mask is not produced by any
// combination of the machine's buttons.
var ErrUnreachableTarget = errors.New("combo: target mask is unreachable")
