package util

import (
	"io"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs the first bytes of a file and checks the
// detected MIME type against a list of allowed prefixes or full types.
// The read bytes are consumed; callers pass a fresh reader afterwards
// or use an io.MultiReader to stitch them back.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, ErrUnsupportedFileType
}
