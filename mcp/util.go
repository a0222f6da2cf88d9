package mcp

import "fmt"

// Helper for extracting the argument map from a tool request
func getArgs(arguments interface{}) (map[string]interface{}, bool) {
	if arguments == nil {
		return map[string]interface{}{}, true
	}
	args, ok := arguments.(map[string]interface{})
	return args, ok
}

// Helper for converting string arguments safely
func getStringArg(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}

// Helper for converting integer arguments safely
func getIntArg(args map[string]interface{}, key string, defaultVal int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	return defaultVal
}

// valueString renders a scalar cell for text output, with NULL for nil
func valueString(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
