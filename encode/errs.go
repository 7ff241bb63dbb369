package encode

import (
	"errors"

	"github.com/yamldump/go-yamldump/schema"
)

var (
	errInternal = errors.New("internal error")

	ErrConfig      = schema.ErrConfig
	ErrUnsupported = errors.New("unacceptable kind of node to dump")
)
