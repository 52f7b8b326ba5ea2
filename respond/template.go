package respond

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// TemplateFunc renders a descriptor's message template against the
// occurrence details. Implementations must be pure functions of their
// inputs.
type TemplateFunc func(template string, details any) string

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Interpolate is the built-in template engine. It substitutes {field}
// placeholders with the matching field of details, resolved by the field's
// wire (JSON) name. Placeholders without a matching field are left intact,
// and a nil details value returns the template unchanged:
//
//	Interpolate("{field} is invalid: {reason}", map[string]string{
//		"field":  "email",
//		"reason": "invalid format",
//	})
//	// "email is invalid: invalid format"
func Interpolate(template string, details any) string {
	if details == nil || !strings.Contains(template, "{") {
		return template
	}
	fields := detailFields(details)
	if len(fields) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := fields[name]
		if !ok {
			return match
		}
		return fmt.Sprintf("%v", v)
	})
}

// detailFields flattens the details value into wire-name keyed fields.
// Structs go through a JSON round-trip so json tags decide placeholder
// names, matching what the client sees in the details object.
func detailFields(details any) map[string]any {
	switch d := details.(type) {
	case map[string]any:
		return d
	case map[string]string:
		out := make(map[string]any, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out
	}

	data, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
