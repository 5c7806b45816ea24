// internal/utils/request.go
package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultMaxBodyBytes bounds the Content-Length a JSON endpoint will accept.
const DefaultMaxBodyBytes int64 = 1 << 20

// ReadJSONObject reads exactly Content-Length bytes from r and decodes them as
// a JSON object. A missing or zero Content-Length is treated as "{}".
func ReadJSONObject(r *http.Request, maxBytes int64) (JSONObject, error) {
	length := int64(0)
	if raw, present := r.Header["Content-Length"]; present && len(raw) > 0 {
		n, err := strconv.ParseInt(strings.TrimSpace(raw[0]), 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidContentLength, raw[0])
		}
		length = n
	} else if r.ContentLength > 0 {
		length = r.ContentLength
	}

	if length == 0 {
		return JSONObject{}, nil
	}
	if maxBytes > 0 && length > maxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrBodyTooLarge, length, maxBytes)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r.Body, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSONBody, err)
	}

	var obj JSONObject
	if err := json.Unmarshal(buf, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSONBody, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: body is not an object", ErrInvalidJSONBody)
	}
	return obj, nil
}
