package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Resolve  bool
	Query    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("TOMLQ_DEBUG_TOKENIZE")
	d.Resolve = boolEnv("TOMLQ_DEBUG_RESOLVE")
	d.Query = boolEnv("TOMLQ_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Resolve() bool {
	return d.Resolve
}
func Query() bool {
	return d.Query
}
