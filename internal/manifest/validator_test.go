package manifest

import (
	"bytes"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func decodeDoc(t *testing.T, s string) interface{} {
	t.Helper()
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(s)))
	if err != nil {
		t.Fatalf("UnmarshalJSON(%s): %v", s, err)
	}
	return doc
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{"empty works", `{"works": []}`, true},
		{"extra keys allowed", `{"works": [], "updatedAt": "2024-01-01"}`, true},
		{"missing works", `{"notworks": []}`, false},
		{"works is object", `{"works": {}}`, false},
		{"works is null", `{"works": null}`, false},
		{"top-level array", `[]`, false},
		{"top-level string", `"works"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateDocument(decodeDoc(t, tt.doc))
			if err != nil {
				t.Fatalf("ValidateDocument error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
			if !tt.valid && len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateDocument_IssueFields(t *testing.T) {
	result, err := ValidateDocument(decodeDoc(t, `{"works": "nope"}`))
	if err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/works" && issue.Keyword == "type" && issue.Message != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a type issue at /works, got %+v", result.Issues)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidateDocument_RequiredIssue(t *testing.T) {
	result, err := ValidateDocument(decodeDoc(t, `{"notworks": []}`))
	if err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("Issues = %+v, want exactly one", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Keyword != "required" || issue.Path != "" || issue.Message == "" {
		t.Errorf("issue = %+v, want a root-level required issue with a message", issue)
	}
}
