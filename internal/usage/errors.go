package usage

import "errors"

// ErrLimitReached indicates the user exceeded their scoring quota.
var ErrLimitReached = errors.New("limit reached")
