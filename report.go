package goArgon2

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MrEthical07/goArgon2/argon2"
)

// encodeBufferLength is the fixed capacity of the destination buffer handed
// to the encoding collaborator for a normal 32-byte-output run.
const encodeBufferLength = 300

// Reporter defines a public type used by goArgon2 APIs.
//
// Reporter renders all user-facing output of the harness onto one writer:
// raw bytes as lowercase hex, contexts as canonical PHC strings, and the
// benchmark sample lines.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Printf forwards formatted output to the reporter's writer.
func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// PrintBytes hex-dumps b in lowercase with no separators, newline-terminated.
func (r *Reporter) PrintBytes(b []byte) {
	fmt.Fprintf(r.w, "%s\n", hex.EncodeToString(b))
}

// PrintEncoded renders ctx and its produced hash as a canonical PHC string
// through the encoding collaborator, using the fixed 300-byte destination
// buffer. An encoding that does not fit is surfaced, never truncated.
func (r *Reporter) PrintEncoded(ctx *argon2.Context, v argon2.Variant) error {
	buf := make([]byte, encodeBufferLength)
	encoded, err := argon2.EncodeString(buf, ctx, v)
	if err != nil {
		return fmt.Errorf("encode hash string: %w", err)
	}
	fmt.Fprintf(r.w, "%s\n", encoded)
	return nil
}
