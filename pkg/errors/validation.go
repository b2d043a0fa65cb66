package errors

import (
	"net"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// prefixRegex matches output file prefixes: a plain basename stem.
var prefixRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidatePrefix validates the stem used to name exported images.
// Exported files are written as <prefix>-all.<ext> and friends inside the
// output directory, so the prefix must not carry path components.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidInput, "output prefix cannot be empty")
	}

	if len(prefix) > 128 {
		return New(ErrCodeInvalidInput, "output prefix too long (max 128 characters)")
	}

	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output prefix contains invalid control characters")
		}
	}

	if strings.ContainsAny(prefix, "/\\") || strings.Contains(prefix, "..") {
		return New(ErrCodeInvalidPath, "output prefix cannot contain path components: %q", prefix)
	}

	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidInput, "invalid output prefix: %q", prefix)
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidatePath validates a layout file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port listen address for the preview server.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid listen address %q", addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return New(ErrCodeInvalidInput, "invalid port in listen address %q", addr)
	}

	return nil
}
