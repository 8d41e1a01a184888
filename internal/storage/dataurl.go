package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrBadDataURL = errors.New("malformed data url")

// DecodeDataURL returns the bytes and media type of a base64 data URL such as
// the signature pad produces. A bare base64 string is accepted too.
func DecodeDataURL(s string) ([]byte, string, error) {
	mediaType := ""
	payload := strings.TrimSpace(s)

	if strings.HasPrefix(payload, "data:") {
		meta, data, ok := strings.Cut(payload[len("data:"):], ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, "", ErrBadDataURL
		}
		mediaType = strings.TrimSuffix(meta, ";base64")
		payload = data
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrBadDataURL
	}
	if len(raw) == 0 {
		return nil, "", ErrBadDataURL
	}
	return raw, mediaType, nil
}
