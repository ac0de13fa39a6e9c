package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The discovery agent's output shape is not contractually stable. The payload
// may arrive as a decoded object, a JSON string, a fenced ```json block, JSON
// buried in prose, or nested under response.result / result — with result
// itself sometimes a further JSON-encoded string. Extraction therefore runs an
// ordered chain of independent candidate probes and accepts the first candidate
// whose "events" field is an array. It never fails: absence is reported as
// (nil, false), which callers treat as "no events found".

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// decodeString turns a string that may contain JSON into a decoded value.
// Tries a direct parse, then the inner text of a fenced code block, then the
// first-to-last brace substring.
func decodeString(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v, true
	}

	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &v); err == nil {
			return v, true
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(trimmed[start:end+1]), &v); err == nil {
			return v, true
		}
	}

	return nil, false
}

// asObject resolves a value to a JSON object, JSON-parsing it first if it is
// still a string.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case string:
		decoded, ok := decodeString(t)
		if !ok {
			return nil, false
		}
		obj, ok := decoded.(map[string]any)
		return obj, ok
	default:
		return nil, false
	}
}

func hasEventArray(obj map[string]any) bool {
	_, ok := obj["events"].([]any)
	return ok
}

// candidates lists the places the real payload may hide inside an already
// decoded object, in probe order: response.result, result, the object itself.
func candidates(obj map[string]any) []map[string]any {
	var out []map[string]any
	if resp, ok := obj["response"].(map[string]any); ok {
		if c, ok := asObject(resp["result"]); ok {
			out = append(out, c)
		}
	}
	if c, ok := asObject(obj["result"]); ok {
		out = append(out, c)
	}
	return append(out, obj)
}
