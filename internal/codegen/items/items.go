// Package items loads the list of raw item identifiers the generator reads.
package items

import (
	"encoding/json"
	"errors"
	"os"
)

// DefaultPath is where the identifier list is read from when no other path
// is configured.
const DefaultPath = "items.json"

// Load reads path and decodes it as a JSON array of strings.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes data as a JSON array of strings. path is only used in errors.
// A JSON null is rejected; an empty array yields an empty, non-nil slice.
func Parse(path string, data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, newParseError(path, data, err)
	}
	if ids == nil {
		return nil, &ParseError{Path: path, Err: errors.New("expected a JSON array of strings, got null")}
	}
	return ids, nil
}

func newParseError(path string, data []byte, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		pe.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		pe.Offset = typeErr.Offset
	}
	if pe.Offset > 0 {
		pe.Line, pe.Column = lineCol(data, pe.Offset)
	}
	return pe
}
