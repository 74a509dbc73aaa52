package level

import (
	"fmt"
	"sort"
)

const BuiltinPrefix = "builtin:"

var builtins = map[string][]string{
	"small": {
		"1111111111111",
		"1000000000001",
		"1000111100001",
		"1000100000001",
		"1000100111001",
		"1000000000001",
		"1111111111111",
	},
	"arena": {
		"111111111111111",
		"100000000000001",
		"100000000000001",
		"100000100000001",
		"100000000000001",
		"100000010000001",
		"100001000000001",
		"100000000000001",
		"100000000000001",
		"111111111111111",
	},
}

// Builtin returns one of the maps compiled into the binary.
func Builtin(name string) (*Grid, error) {
	rows, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("level: unknown built-in map %q (have %v)", name, BuiltinNames())
	}
	return Parse(rows)
}

func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
