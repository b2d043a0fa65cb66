package errors

import (
	"testing"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid default", "papermodel", false},
		{"valid with dash", "my-model", false},
		{"valid with underscore", "my_model", false},
		{"valid with dot", "model.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"slash", "out/model", true},
		{"backslash", "out\\model", true},
		{"parent", "..", true},
		{"leading dot", ".model", true},
		{"control char", "model\x01", true},
		{"space", "my model", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"png", "png", false},
		{"bmp", "bmp", false},
		{"empty", "", true},
		{"unknown", "gif", true},
		{"case sensitive", "PNG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, "png", "bmp")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "papermodeldata.txt", false},
		{"absolute", "/tmp/papermodeldata.txt", false},
		{"nested", "models/net.txt", false},

		{"empty", "", true},
		{"null byte", "net\x00.txt", true},
		{"newline", "net\n.txt", true},
		{"too long", string(make([]byte, 5000)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"localhost", "localhost:8080", false},
		{"any host", ":8080", false},
		{"ipv6", "[::1]:9000", false},

		{"empty", "", true},
		{"no port", "localhost", true},
		{"bad port", "localhost:http", true},
		{"port range", "localhost:70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListenAddr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateListenAddr(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
