package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrNotFound is returned by Load when the manifest file does not exist.
// It wraps fs.ErrNotExist.
var ErrNotFound = fmt.Errorf("manifest not found: %w", fs.ErrNotExist)

// ParseError reports a manifest that is not valid JSON. Err carries the
// decoder message unchanged.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructureError reports a manifest that parses but has no works array.
type StructureError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s is malformed: missing %s array", filepath.Base(e.Path), KeyWorks)
}

// Load reads the manifest at path, checks its structure and returns the
// decoded works. A missing file yields an error wrapping ErrNotFound, bad
// JSON a *ParseError and a missing or non-array works key a *StructureError.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Decode parses manifest bytes. path is only used in error messages.
func Decode(path string, data []byte) (*Manifest, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	result, err := ValidateDocument(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &StructureError{Path: path, Issues: result.Issues}
	}

	// The schema guarantees an object with a works array.
	raw := doc.(map[string]interface{})[KeyWorks].([]interface{})
	m := &Manifest{Works: make([]Work, 0, len(raw))}
	for _, item := range raw {
		m.Works = append(m.Works, decodeWork(item))
	}
	return m, nil
}

// decodeWork builds a Work from a decoded JSON value. Entries that are not
// objects produce a Work with every field missing.
func decodeWork(v interface{}) Work {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return Work{}
	}
	w := Work{
		ID:         text(obj[KeyID]),
		Title:      text(obj[KeyTitle]),
		GIFURL:     text(obj[KeyGIFURL]),
		WebPURL:    text(obj[KeyWebPURL]),
		UploadDate: text(obj[KeyUploadDate]),
	}
	for _, key := range []string{KeyGIFURL, KeyWebPURL} {
		if _, isString := obj[key].(string); !isString && text(obj[key]) != "" {
			w.NonStringURLs = append(w.NonStringURLs, key)
		}
	}
	return w
}

// text folds a JSON value to a string. null, "", false and numeric zero are
// missing and fold to "".
func text(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return ""
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
		return val.String()
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(string(out))
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
