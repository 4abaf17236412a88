package arg

import (
	"fmt"
	"strconv"
)

// ParseArg parses raw CLI arguments into a map so commands can work with
// flags and positionals uniformly. "--flag value" and "-f value" become
// string entries, a flag without a value becomes a boolean true, and
// positionals accumulate under the "args" key.
func ParseArg(rawArgs []string) map[string]any {
	args := make(map[string]any)
	for i := 0; i < len(rawArgs); i++ {
		raw := rawArgs[i]
		if len(raw) > 0 && raw[0] == '-' {
			key := raw
			for len(key) > 0 && key[0] == '-' {
				key = key[1:]
			}

			// Consume the next token as the value unless it is another flag.
			if i+1 < len(rawArgs) && (len(rawArgs[i+1]) == 0 || rawArgs[i+1][0] != '-') {
				args[key] = rawArgs[i+1]
				i++
			} else {
				args[key] = true
			}
		} else {
			if list, ok := args["args"].([]string); ok {
				args["args"] = append(list, raw)
			} else {
				args["args"] = []string{raw}
			}
		}
	}
	return args
}

// Positionals returns the positional arguments in order.
func Positionals(args map[string]any) []string {
	if list, ok := args["args"].([]string); ok {
		return list
	}
	return nil
}

// String returns the first of keys present as a string value.
func String(args map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if val, ok := args[key].(string); ok {
			return val, true
		}
	}
	return "", false
}

// Int returns the first of keys present, parsed as an integer, or def when
// none is set. A present but unparseable value is an error.
func Int(args map[string]any, def int, keys ...string) (int, error) {
	for _, key := range keys {
		val, ok := args[key].(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("flag -%s expects an integer, got %q", key, val)
		}
		return n, nil
	}
	return def, nil
}

// Bool reports whether any of keys is set as a boolean flag.
func Bool(args map[string]any, keys ...string) bool {
	for _, key := range keys {
		if val, ok := args[key].(bool); ok && val {
			return true
		}
	}
	return false
}
