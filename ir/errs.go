package ir

import "errors"

var (
	ErrConvert = errors.New("convert error")
)
