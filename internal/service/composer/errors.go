package composer

import "errors"

var ErrPackageNotFound = errors.New("custom package not found")
