package util

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// AllowedExtension reports whether the file's extension is in the
// allow-list. Extensions in the list carry the leading dot.
func AllowedExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// SanitizeFilename strips any path components and characters that have
// no business in a stored filename.
func SanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// DetectMimeType sniffs the content type from the first 512 bytes.
// ReadFull keeps filling the buffer until it has 512 bytes or hits EOF,
// so a reader that returns short chunks still yields a full sniff window.
func DetectMimeType(reader io.Reader) (string, error) {
	buffer := make([]byte, 512)
	n, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	return http.DetectContentType(buffer[:n]), nil
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
