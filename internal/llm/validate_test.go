package llm

import (
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name:        name,
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer"},
			},
			"required":             []any{"topic", "count"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(testSchema("valid-doc"), []byte(`{"topic":"algebra","count":3}`))
	if err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	err := validateResponse(testSchema("missing-field"), []byte(`{"topic":"algebra"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	err := validateResponse(testSchema("wrong-type"), []byte(`{"topic":"algebra","count":"three"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(testSchema("bad-json"), []byte(`{not json`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, []byte(`anything`)); err != nil {
		t.Fatalf("nil schema should not validate, got %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	s := testSchema("cached")
	if err := validateResponse(s, []byte(`{"topic":"a","count":1}`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load("cached"); !ok {
		t.Error("compiled schema not cached")
	}
	// Second validation goes through the cache.
	if err := validateResponse(s, []byte(`{"topic":"b","count":2}`)); err != nil {
		t.Fatal(err)
	}
}
