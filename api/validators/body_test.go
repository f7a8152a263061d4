package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

type samplePayload struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku" validate:"required"`
	Optional *string `json:"optional,omitempty"`
}

func decode(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	var payload samplePayload
	return DecodeJSONBody(req, &payload)
}

func TestDecodeJSONBody_Success(t *testing.T) {
	if err := decode(t, `{"name":"Widget","sku":"WID-1"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBody_EmptyBody(t *testing.T) {
	err := decode(t, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMalformedRequest {
		t.Fatalf("expected malformed request, got %v", err)
	}
}

func TestDecodeJSONBody_InvalidJSON(t *testing.T) {
	err := decode(t, `{"name": "Widget",`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMalformedRequest {
		t.Fatalf("expected malformed request, got %v", err)
	}
}

func TestDecodeJSONBody_UnknownField(t *testing.T) {
	err := decode(t, `{"name":"Widget","sku":"WID-1","bogus":true}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMalformedRequest {
		t.Fatalf("expected malformed request for unknown field, got %v", err)
	}
}

func TestDecodeJSONBody_ListsEveryMissingField(t *testing.T) {
	err := decode(t, `{}`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMissingFields {
		t.Fatalf("expected missing fields, got %v", err)
	}

	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	missing, ok := details["missing"].([]string)
	if !ok {
		t.Fatalf("expected missing list, got %T", details["missing"])
	}
	if len(missing) != 2 {
		t.Fatalf("expected both missing fields listed, got %v", missing)
	}
	for _, field := range []string{"name", "sku"} {
		found := false
		for _, m := range missing {
			if m == field {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in missing list %v", field, missing)
		}
	}
}
