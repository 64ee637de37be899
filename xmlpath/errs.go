package xmlpath

import "errors"

var (
	ErrRule = errors.New("bad rule")
)
