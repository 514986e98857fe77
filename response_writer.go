package localize

import (
	"bufio"
	"bytes"
	"net"
	"net/http"
	"strconv"
)

// bufferedWriter captures the response body so the middleware can rewrite it
// before anything reaches the client. Headers pass through the shared header
// map; status and body are held back until the rewrite decision is made.
type bufferedWriter struct {
	http.ResponseWriter
	buf       bytes.Buffer
	status    int
	hijacked  bool
	wroteOnce bool
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *bufferedWriter) WriteHeader(code int) {
	if !w.wroteOnce {
		w.wroteOnce = true
		w.status = code
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.wroteOnce = true
	return w.buf.Write(b)
}

// Flush is a no-op while buffering: a partially flushed body could split a
// nugget across the rewrite boundary. The whole body flushes once in finish.
func (w *bufferedWriter) Flush() {}

// Hijack hands the connection over untouched (websockets, SSE upgrades);
// rewriting is skipped for hijacked responses.
func (w *bufferedWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	w.hijacked = true
	return hijacker.Hijack()
}

// Unwrap returns the underlying ResponseWriter.
func (w *bufferedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// finish applies transform to the buffered body and emits status, corrected
// Content-Length, and body to the client.
func (w *bufferedWriter) finish(transform func(body []byte) []byte) error {
	if w.hijacked {
		return nil
	}

	body := w.buf.Bytes()
	if len(body) > 0 {
		body = transform(body)
	}

	header := w.ResponseWriter.Header()
	header.Del("Content-Length")
	if len(body) > 0 {
		header.Set("Content-Length", strconv.Itoa(len(body)))
	}

	w.ResponseWriter.WriteHeader(w.status)
	if len(body) == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(body)
	return err
}
