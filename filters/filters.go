// Package filters provides the preprocessing steps run around contrast
// enhancement when preparing a grayscale frame for code detection.
package filters

func intParam(params map[string]interface{}, key string, fallback int) int {
	if val, ok := params[key].(int); ok {
		return val
	}
	return fallback
}

func floatParam(params map[string]interface{}, key string, fallback float64) float64 {
	if val, ok := params[key].(float64); ok {
		return val
	}
	return fallback
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
