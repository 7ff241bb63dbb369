package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Anchors bool
	Scalars bool
}

var d *debug

func init() {
	d = &debug{}
	d.Anchors = boolEnv("YD_DEBUG_ANCHORS")
	d.Scalars = boolEnv("YD_DEBUG_SCALARS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Anchors() bool {
	return d.Anchors
}
func Scalars() bool {
	return d.Scalars
}
