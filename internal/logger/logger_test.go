package logger

import "testing"

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"token", "[REDACTED]"},
		{"authorization", "[REDACTED]"},
		{"password", "[REDACTED]"},
		{"api_key", "[REDACTED]"},
		{"donor_email", "[REDACTED]"},
	}
	for _, tt := range tests {
		out := sanitizeKVs([]interface{}{tt.key, "secret-value"})
		if len(out) != 2 {
			t.Fatalf("sanitizeKVs returned %d elements", len(out))
		}
		if out[1] != tt.want {
			t.Errorf("sanitizeKVs(%q) value = %v, want %q", tt.key, out[1], tt.want)
		}
	}
}

func TestSanitizeKVsHashesUserIDs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", "8b7f0a2e"})
	hashed, ok := out[1].(string)
	if !ok {
		t.Fatalf("hashed value is %T, want string", out[1])
	}
	if hashed == "8b7f0a2e" {
		t.Fatalf("user_id passed through unhashed")
	}
	if len(hashed) == 0 || hashed[:5] != "hash:" {
		t.Fatalf("hashed value = %q, want hash: prefix", hashed)
	}

	again := sanitizeKVs([]interface{}{"user_id", "8b7f0a2e"})
	if again[1] != out[1] {
		t.Fatalf("hashing is not deterministic, correlation breaks")
	}
}

func TestSanitizeKVsLeavesOrdinaryKeys(t *testing.T) {
	out := sanitizeKVs([]interface{}{"story_id", "abc", "count", 4})
	if out[1] != "abc" {
		t.Errorf("story_id value = %v, want unchanged", out[1])
	}
	if out[3] != 4 {
		t.Errorf("count value = %v, want unchanged", out[3])
	}
}

func TestSanitizeKVsOddTrailingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"token", "secret", "dangling"})
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Errorf("token value = %v, want redacted", out[1])
	}
	if out[2] != "dangling" {
		t.Errorf("trailing element = %v, want preserved", out[2])
	}
}
