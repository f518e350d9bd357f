package transport

import "testing"

func TestTaskUpdateRequestPatch(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantClear bool
		wantDesc  *string
		wantTitle bool
	}{
		{name: "omitted", body: `{"title":"x"}`, wantTitle: true},
		{name: "null clears", body: `{"description":null}`, wantClear: true},
		{name: "value sets", body: `{"description":"notes"}`, wantDesc: strPtr("notes")},
		{name: "empty string sets", body: `{"description":""}`, wantDesc: strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeTaskUpdate([]byte(tt.body))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			patch := req.Patch()
			if patch.ClearDescription != tt.wantClear {
				t.Fatalf("clear: expected %v, got %v", tt.wantClear, patch.ClearDescription)
			}
			if (patch.Title != nil) != tt.wantTitle {
				t.Fatalf("title presence mismatch: %v", patch.Title)
			}
			switch {
			case tt.wantDesc == nil && patch.Description != nil:
				t.Fatalf("unexpected description %q", *patch.Description)
			case tt.wantDesc != nil && (patch.Description == nil || *patch.Description != *tt.wantDesc):
				t.Fatalf("expected description %q, got %v", *tt.wantDesc, patch.Description)
			}
		})
	}
}

func TestDecodeTaskUpdateRejectsBadBodies(t *testing.T) {
	for _, body := range []string{`{"description":42}`, `[1,2]`, `{`} {
		if _, err := DecodeTaskUpdate([]byte(body)); err == nil {
			t.Fatalf("expected decode error for %s", body)
		}
	}
}

func strPtr(s string) *string { return &s }
