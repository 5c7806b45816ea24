package middleware

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/estatesandstands/estates-service/internal/metrics"
	"github.com/estatesandstands/estates-service/internal/utils"
)

// net/http refuses a request whose Content-Length is not a non-negative
// integer before any handler runs, and answers it in plain text. The listener
// below reads each request head first and answers those requests with the
// same JSON 400 the API handlers use.

// maxInspectedHead matches the point where net/http gives up on a head
// (DefaultMaxHeaderBytes plus its 4 KiB read slack).
const maxInspectedHead = http.DefaultMaxHeaderBytes + 4096

// ContentLengthListener wraps ln so every accepted connection is inspected.
func ContentLengthListener(ln net.Listener) net.Listener {
	return &contentLengthListener{Listener: ln}
}

type contentLengthListener struct {
	net.Listener
}

func (l *contentLengthListener) Accept() (net.Conn, error) {
	c, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return &contentLengthConn{Conn: c}, nil
}

type connMode int

const (
	modeHead        connMode = iota // collecting the next request head
	modeBody                        // forwarding a body of known length
	modePassthrough                 // framing unknown, stop inspecting
	modeRejected                    // bad Content-Length seen, reply on Close
)

type headFraming int

const (
	framingLength headFraming = iota
	framingUnknown
	framingInvalid
)

// contentLengthConn is read by one goroutine at a time (net/http serializes
// its foreground and background reads), so only the rejection state shared
// with Close needs the mutex.
type contentLengthConn struct {
	net.Conn

	mode     connMode
	inbox    []byte // read from the socket, not yet classified
	pending  []byte // classified, not yet handed to net/http
	bodyLeft int64
	scratch  [4096]byte

	mu             sync.Mutex
	rejected       bool
	rejectedMethod string
	replied        bool
}

func (c *contentLengthConn) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		c.advance()
		if len(c.pending) > 0 {
			n := copy(p, c.pending)
			c.pending = c.pending[n:]
			return n, nil
		}
		switch c.mode {
		case modeRejected:
			return 0, io.EOF
		case modePassthrough:
			return c.Conn.Read(p)
		}

		n, err := c.Conn.Read(c.scratch[:])
		c.inbox = append(c.inbox, c.scratch[:n]...)
		if n == 0 && err != nil {
			// Partial heads stay buffered; net/http retries after its
			// deadline resets.
			return 0, err
		}
	}
}

// advance moves bytes from inbox to pending as far as the framing is known.
func (c *contentLengthConn) advance() {
	for len(c.inbox) > 0 {
		switch c.mode {
		case modePassthrough:
			c.pending = append(c.pending, c.inbox...)
			c.inbox = nil
			return

		case modeRejected:
			c.inbox = nil
			return

		case modeBody:
			k := int64(len(c.inbox))
			if k > c.bodyLeft {
				k = c.bodyLeft
			}
			c.pending = append(c.pending, c.inbox[:k]...)
			c.inbox = c.inbox[k:]
			c.bodyLeft -= k
			if c.bodyLeft == 0 {
				c.mode = modeHead
			}

		case modeHead:
			end := headEnd(c.inbox)
			if end < 0 {
				if len(c.inbox) > maxInspectedHead {
					c.mode = modePassthrough
					continue
				}
				return
			}
			head := c.inbox[:end]
			framing, length, method := inspectHead(head)
			switch framing {
			case framingInvalid:
				c.mu.Lock()
				c.rejected = true
				c.rejectedMethod = method
				c.mu.Unlock()
				c.mode = modeRejected
			case framingUnknown:
				c.mode = modePassthrough
			default:
				c.pending = append(c.pending, head...)
				c.inbox = c.inbox[end:]
				if length > 0 {
					c.bodyLeft = length
					c.mode = modeBody
				}
			}
		}
	}
}

// Close sends the JSON 400 for a rejected head. net/http closes the
// connection once it has read EOF and flushed any earlier response, so the
// reply always comes last on the wire.
func (c *contentLengthConn) Close() error {
	c.mu.Lock()
	reply := c.rejected && !c.replied
	c.replied = true
	method := c.rejectedMethod
	c.mu.Unlock()

	if reply {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(time.Second))
		if _, err := c.Conn.Write(invalidContentLengthReply); err != nil {
			utils.Logger.WithError(err).Debug("Failed to write Content-Length rejection")
		}
		c.lingerAfterReply()
		metrics.RecordAPIRequest(method, unmatchedRoute, strconv.Itoa(http.StatusBadRequest), 0)
		utils.Logger.WithFields(logrus.Fields{
			"status":      http.StatusBadRequest,
			"code":        utils.ErrCodeInvalidPayload,
			"method":      method,
			"remote_addr": c.RemoteAddr().String(),
		}).Warn(utils.MsgInvalidContentLength)
	}
	return c.Conn.Close()
}

// lingerAfterReply half-closes and drains what the client still sends, so
// unread request bytes do not turn the close into a reset that discards the
// reply (the same trick net/http uses for its own early replies).
func (c *contentLengthConn) lingerAfterReply() {
	if cw, ok := c.Conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
	_ = c.Conn.SetReadDeadline(time.Now().Add(rejectLinger))
	_, _ = io.Copy(io.Discard, io.LimitReader(c.Conn, maxInspectedHead))
}

const rejectLinger = 500 * time.Millisecond

var invalidContentLengthReply = func() []byte {
	body, err := utils.EncodeJSON(utils.ErrorResponse{Error: utils.MsgInvalidContentLength})
	if err != nil {
		panic(err)
	}
	return []byte(fmt.Sprintf(
		"HTTP/1.1 400 Bad Request\r\n"+
			"Content-Type: application/json\r\n"+
			"Content-Length: %d\r\n"+
			"Cache-Control: no-store\r\n"+
			"Connection: close\r\n\r\n%s",
		len(body), body,
	))
}()

// headEnd returns the index just past the blank line ending a request head,
// or -1. Lines may end in CRLF or a bare LF, as net/textproto allows.
func headEnd(b []byte) int {
	for i, ch := range b {
		if ch != '\n' {
			continue
		}
		if i+1 < len(b) && b[i+1] == '\n' {
			return i + 2
		}
		if i+2 < len(b) && b[i+1] == '\r' && b[i+2] == '\n' {
			return i + 3
		}
	}
	return -1
}

// inspectHead applies net/http's Content-Length rules: every value must parse
// as a 63-bit unsigned integer and repeated values must agree. A
// Transfer-Encoding overrides Content-Length; it and connection upgrades end
// inspection for the rest of the connection.
func inspectHead(head []byte) (headFraming, int64, string) {
	lines := strings.Split(strings.ReplaceAll(string(head), "\r\n", "\n"), "\n")
	method, _, _ := strings.Cut(lines[0], " ")
	if method == http.MethodConnect {
		return framingUnknown, 0, method
	}

	var lengths []string
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(name, "Transfer-Encoding"), strings.EqualFold(name, "Upgrade"):
			return framingUnknown, 0, method
		case strings.EqualFold(name, "Content-Length"):
			lengths = append(lengths, strings.Trim(value, " \t"))
		}
	}
	if len(lengths) == 0 {
		return framingLength, 0, method
	}

	n, err := strconv.ParseUint(lengths[0], 10, 63)
	if err != nil {
		return framingInvalid, 0, method
	}
	for _, other := range lengths[1:] {
		if other != lengths[0] {
			return framingInvalid, 0, method
		}
	}
	return framingLength, int64(n), method
}
