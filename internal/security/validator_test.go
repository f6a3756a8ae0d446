package security

import (
	"testing"
)

func TestValidateURL(t *testing.T) {
	validator := NewDefaultValidator()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://example.com", false},
		{"valid http", "http://example.com/page?x=1", false},
		{"with path and fragment", "https://example.com/a/b#c", false},
		{"empty", "", true},
		{"relative", "example.com/page", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"file scheme", "file:///etc/hosts", true},
		{"scheme only", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
