package diff

import (
	"encoding/json"
	"fmt"
	"strings"
)

// renderLines converts a value to its pretty-printed JSON lines (2-space
// indent). Blank lines produced as pretty-printing artifacts are dropped.
// Values that cannot be marshaled (cyclic references, channels, functions)
// fall back to a best-effort fmt rendering rather than propagating the
// error. A nil value renders as the single line "null".
func renderLines(v any) []string {
	text := renderText(v)
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{"null"}
	}
	return lines
}

func renderText(v any) string {
	if v == nil {
		return "null"
	}
	encoded, err := marshalIndent(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return encoded
}

func marshalIndent(v any) (encoded string, err error) {
	// json.Marshal panics instead of erroring for a handful of inputs
	// (unexported cyclic wrappers); recover into the fallback path.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("marshal panic: %v", r)
		}
	}()
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
