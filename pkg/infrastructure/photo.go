package infrastructure

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// ErrUnsupportedImage marks uploads that are not a recognized image type.
var ErrUnsupportedImage = errors.New("unsupported image type")

// MaxPhotoBytes caps uploaded photos; anything bigger would bloat the
// document and the exported JSON.
const MaxPhotoBytes = 2 << 20

// EncodePhoto converts raw image bytes into the self-contained data URI
// stored in personalInfo.photo. The content type is sniffed from the bytes,
// not taken from the upload.
func EncodePhoto(data []byte) (string, error) {
	if len(data) == 0 || len(data) > MaxPhotoBytes {
		return "", ErrUnsupportedImage
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrUnsupportedImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
