package catalog

import "errors"

// ErrUnknownCategory is reported when a strict mutation names a category id
// outside the known set. The store itself is left untouched.
var ErrUnknownCategory = errors.New("unknown category")
