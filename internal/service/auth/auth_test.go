package auth

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"local mobile", "09121234567", "+989121234567", false},
		{"already E.164", "+989121234567", "+989121234567", false},
		{"with spaces", "0912 123 4567", "+989121234567", false},
		{"international format", "0098 912 123 4567", "+989121234567", false},
		{"too short", "0912", "", true},
		{"letters", "not-a-number", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
