package ton

import "errors"

var ErrPatch = errors.New("patch error")
