// internal/utils/response.go
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload    = "invalid_payload"
	ErrCodeValidation        = "validation_error"
	ErrCodeNotFound          = "not_found"
	ErrCodeUnsupportedMethod = "unsupported_method"
	ErrCodeInternal          = "internal_server_error"
)

// ErrorResponse is the public error body. The code only goes to the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondErrorWithCode writes {"error": publicMessage} and logs the failure
// with its internal code. devErr is optional.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	devErrs ...error,
) {
	RespondWithJSON(w, status, ErrorResponse{Error: publicMessage})

	fields := logrus.Fields{
		"status": status,
		"code":   errorCode,
	}
	if len(devErrs) > 0 && devErrs[0] != nil {
		fields["error"] = devErrs[0].Error()
	}
	entry := Logger.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Warn(publicMessage)
	}
}

// RespondWithJSON for successful cases. Every JSON answer carries an explicit
// Content-Length and is never cached.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	body, err := EncodeJSON(payload)
	if err != nil {
		Logger.WithError(err).Error("Failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = EncodeJSON(ErrorResponse{Error: MsgInternal})
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// EncodeJSON marshals v without HTML escaping, with ", " / ": " separators
// and with non-ASCII text escaped as \uXXXX: the exact bytes clients of this
// site have always received.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return legacyLayout(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// legacyLayout rewrites a compact JSON document: a space after every
// structural ':' and ',', and every non-ASCII rune inside a string escaped as
// lowercase \uXXXX (a surrogate pair above the BMP).
func legacyLayout(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/8)
	inString, escaped := false, false
	for i := 0; i < len(compact); {
		c := compact[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(compact[i:])
			out = appendEscapedRune(out, r)
			i += size
			continue
		}
		out = append(out, c)
		i++
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && (c == ':' || c == ','):
			out = append(out, ' ')
		}
	}
	return out
}

func appendEscapedRune(out []byte, r rune) []byte {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		return fmt.Appendf(out, "\\u%04x\\u%04x", hi, lo)
	}
	return fmt.Appendf(out, "\\u%04x", r)
}
