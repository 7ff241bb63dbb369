package token

import "errors"

var (
	ErrInternal = errors.New("internal error")
)
