package version

import "errors"

var (
	ErrParse   = errors.New("version parse error")
	ErrPattern = errors.New("invalid version pattern")
)
