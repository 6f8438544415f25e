// Package debug provides env-gated debug switches for the migration
// engine. Set YUP_DEBUG_VERSION, YUP_DEBUG_RELOCATE or YUP_DEBUG_MERGE
// to a truthy value to trace the corresponding phase on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Version  bool
	Relocate bool
	Merge    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Version = boolEnv("YUP_DEBUG_VERSION")
	d.Relocate = boolEnv("YUP_DEBUG_RELOCATE")
	d.Merge = boolEnv("YUP_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Version() bool {
	return d.Version
}
func Relocate() bool {
	return d.Relocate
}
func Merge() bool {
	return d.Merge
}
