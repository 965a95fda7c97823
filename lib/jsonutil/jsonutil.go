package jsonutil

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Marshal encodes [val] as JSON with map keys sorted and no HTML escaping.
func Marshal(val any) ([]byte, error) {
	return json.Marshal(val)
}

// MarshalSpaced encodes [val] as JSON using `", "` and `": "` as separators, e.g. {"a": 1, "b": [1, 2]}
func MarshalSpaced(val any) (string, error) {
	bytes, err := Marshal(val)
	if err != nil {
		return "", err
	}

	return addSeparatorSpaces(string(bytes)), nil
}

// addSeparatorSpaces expects compact JSON and adds a space after every separator that is not inside a string.
func addSeparatorSpaces(compact string) string {
	var sb strings.Builder
	sb.Grow(len(compact) + len(compact)/4)

	var inString, escaped bool
	for _, r := range compact {
		sb.WriteRune(r)
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case ',', ':':
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
