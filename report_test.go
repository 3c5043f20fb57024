package goArgon2

import (
	"bytes"
	"testing"
)

func TestPrintBytesLowercaseHex(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).PrintBytes([]byte{0x00, 0xAB, 0xFF})
	if got := buf.String(); got != "00abff\n" {
		t.Fatalf("PrintBytes = %q, want %q", got, "00abff\n")
	}
}

func TestPrintEncodedFitsFixedBuffer(t *testing.T) {
	ctx, err := NewContext().
		WithOutput(32).
		WithPassword([]byte("report-pw")).
		WithSalt(make([]byte, 16)).
		WithCosts(1, 64).
		WithParallelism(1, 1).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if err := Dispatch("d", ctx); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf).PrintEncoded(ctx, variantForTag("d")); err != nil {
		t.Fatalf("PrintEncoded error: %v", err)
	}
	out := buf.String()
	if len(out) == 0 || out[0] != '$' {
		t.Fatalf("unexpected encoded output: %q", out)
	}
	if len(out) > encodeBufferLength+1 {
		t.Fatalf("encoded output exceeds the fixed buffer: %d bytes", len(out))
	}
}
