package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectHead(t *testing.T) {
	cases := []struct {
		name    string
		head    string
		framing headFraming
		length  int64
	}{
		{"no body", "GET / HTTP/1.1\r\nHost: x\r\n\r\n", framingLength, 0},
		{"length", "POST /api/booking HTTP/1.1\r\ncontent-length: 42\r\n\r\n", framingLength, 42},
		{"padded length", "POST / HTTP/1.1\r\nContent-Length:  7 \t\r\n\r\n", framingLength, 7},
		{"duplicate equal", "POST / HTTP/1.1\r\nContent-Length: 7\r\nContent-Length: 7\r\n\r\n", framingLength, 7},
		{"bare LF", "POST / HTTP/1.1\nContent-Length: 3\n\n", framingLength, 3},
		{"not a number", "POST / HTTP/1.1\r\nContent-Length: abc\r\n\r\n", framingInvalid, 0},
		{"negative", "POST / HTTP/1.1\r\nContent-Length: -1\r\n\r\n", framingInvalid, 0},
		{"empty", "POST / HTTP/1.1\r\nContent-Length:\r\n\r\n", framingInvalid, 0},
		{"list", "POST / HTTP/1.1\r\nContent-Length: 5, 5\r\n\r\n", framingInvalid, 0},
		{"duplicate differing", "POST / HTTP/1.1\r\nContent-Length: 1\r\nContent-Length: 2\r\n\r\n", framingInvalid, 0},
		{"chunked wins", "POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\nContent-Length: abc\r\n\r\n", framingUnknown, 0},
		{"upgrade", "GET / HTTP/1.1\r\nUpgrade: websocket\r\n\r\n", framingUnknown, 0},
		{"connect", "CONNECT example.com:443 HTTP/1.1\r\n\r\n", framingUnknown, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			framing, length, _ := inspectHead([]byte(tc.head))
			assert.Equal(t, tc.framing, framing)
			assert.Equal(t, tc.length, length)
		})
	}
}

func TestHeadEnd(t *testing.T) {
	assert.Equal(t, -1, headEnd([]byte("POST / HTTP/1.1\r\nHost: x\r\n")))
	assert.Equal(t, 28, headEnd([]byte("POST / HTTP/1.1\r\nHost: x\r\n\r\n{}")))
	assert.Equal(t, 25, headEnd([]byte("POST / HTTP/1.1\nHost: x\n\n{}")))
}
