package utils

import "testing"

func TestCompactJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\n  \"a\": 1,\n  \"b\": [1, 2]\n}", `{"a":1,"b":[1,2]}`},
		{` [ true , null ] `, `[true,null]`},
		{`"keeps  inner  spaces"`, `"keeps  inner  spaces"`},
		{`1.50`, `1.50`},
	}

	for _, tt := range tests {
		got, err := CompactJSON([]byte(tt.in))
		if err != nil {
			t.Fatalf("CompactJSON(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("CompactJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompactJSONRejectsMalformed(t *testing.T) {
	if _, err := CompactJSON([]byte(`{"a":1`)); err == nil {
		t.Error("expected error for unbalanced braces")
	}
}

func TestStringValue(t *testing.T) {
	s := "ada@example.com"
	if StringValue(&s) != s || StringValue(nil) != "" {
		t.Error("StringValue mismatch")
	}
}
