// Package dataurl turns image files into data: URLs for inline storage of
// logos and photos alongside the entities that own them.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxBytes caps the raw image size. Everything ends up JSON-encoded inside
// the local store, so large images would bloat every collection write.
const MaxBytes = 2 << 20

// Encode sniffs the payload's content type and returns a base64 data URL.
// Non-image payloads are rejected.
func Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty payload")
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("payload exceeds %d bytes", MaxBytes)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("payload must be an image, detected %s", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile reads path and encodes its contents.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Encode(data)
}

// IsDataURL reports whether the value looks like an inline data URL.
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}
