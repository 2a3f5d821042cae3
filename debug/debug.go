package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Set   bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONC_DEBUG_PARSE")
	d.Set = boolEnv("JSONC_DEBUG_SET")
	d.Merge = boolEnv("JSONC_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Set() bool {
	return d.Set
}
func Merge() bool {
	return d.Merge
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
