package notification

import (
	"sort"
	"strings"
)

// Render substitutes every {{key}} occurrence with its variable value.
// Unknown placeholders stay verbatim; rendering never fails. Keys are
// applied in sorted order so output is deterministic even when a value
// itself contains a placeholder.
func Render(text string, vars map[string]string) string {
	if text == "" || len(vars) == 0 {
		return text
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		text = strings.ReplaceAll(text, "{{"+k+"}}", vars[k])
	}
	return text
}
