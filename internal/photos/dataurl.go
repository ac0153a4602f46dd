// Package photos converts image files to and from the base64 data URIs that
// progress photos are stored as.
package photos

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/filex"
)

// MaxFileSize caps a single upload.
const MaxFileSize = 10 << 20

// Encode returns data as a data URI. The MIME type is sniffed from content.
func Encode(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EncodeFile reads path and returns its content as a data URI.
func EncodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("file %s is %d bytes, limit is %d", path, info.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Encode(data), nil
}

// Decode splits a data URI into its MIME type and payload. Both base64 and
// plain (percent-free) payloads are accepted.
func Decode(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", common.ErrInvalidDataURL)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing comma", common.ErrInvalidDataURL)
	}

	mime, isBase64 := strings.CutSuffix(header, ";base64")
	if mime == "" {
		mime = "text/plain"
	}
	if !isBase64 {
		return mime, []byte(payload), nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrInvalidDataURL, err)
	}
	return mime, data, nil
}

// DecodeToFile writes the payload of dataURL to path, creating missing
// directories.
func DecodeToFile(dataURL, path string) error {
	_, data, err := Decode(dataURL)
	if err != nil {
		return err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
