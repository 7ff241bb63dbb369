package encode

import (
	"strings"

	"github.com/yamldump/go-yamldump/ir"
)

func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
