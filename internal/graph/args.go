package graph

// Argument helpers. Absent and null arguments are both missing from the map.

func stringArg(args map[string]interface{}, key, def string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

func intArg(args map[string]interface{}, key string, def int) int {
	if n := optInt(args, key); n != nil {
		return *n
	}
	return def
}

func optString(args map[string]interface{}, key string) *string {
	v, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func optInt(args map[string]interface{}, key string) *int {
	var n int
	switch v := args[key].(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	default:
		return nil
	}
	return &n
}

func optFloat(args map[string]interface{}, key string) *float64 {
	var f float64
	switch v := args[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	default:
		return nil
	}
	return &f
}

// optStrings drops null list items.
func optStrings(args map[string]interface{}, key string) *[]string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return &out
}
