package goArgon2

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	params := InvocationParameters{
		Type:       "d",
		TimeCost:   3,
		MemoryCost: 4096,
		Lanes:      4,
		Threads:    4,
		Password:   []byte("pw"),
	}
	if err := Run(params, NewReporter(&buf)); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Argon2d with") {
		t.Fatalf("missing run header:\n%s", out)
	}
	if !strings.Contains(out, "\tt_cost = 3\n") || !strings.Contains(out, "\tm_cost = 4096\n") {
		t.Fatalf("missing cost lines:\n%s", out)
	}
	if !strings.Contains(out, "\tpassword = pw\n") {
		t.Fatalf("missing password line:\n%s", out)
	}
	if !strings.Contains(out, "\tsalt = "+strings.Repeat("00", 16)+"\n") {
		t.Fatalf("missing all-zero salt line:\n%s", out)
	}
	if !regexp.MustCompile(`(?m)^[0-9a-f]{64}$`).MatchString(out) {
		t.Fatalf("missing 64-hex-character digest line:\n%s", out)
	}
	if !strings.Contains(out, "\n$argon2d$") {
		t.Fatalf("missing encoded string:\n%s", out)
	}
}

func TestRunDeterministicDigest(t *testing.T) {
	params := InvocationParameters{Type: "i", TimeCost: 1, MemoryCost: 64, Lanes: 2, Threads: 2}

	digest := func() string {
		t.Helper()
		var buf bytes.Buffer
		if err := Run(params, NewReporter(&buf)); err != nil {
			t.Fatalf("Run error: %v", err)
		}
		m := regexp.MustCompile(`(?m)^[0-9a-f]{64}$`).FindString(buf.String())
		if m == "" {
			t.Fatalf("no digest line in output:\n%s", buf.String())
		}
		return m
	}

	if first, second := digest(), digest(); first != second {
		t.Fatalf("same parameters produced different digests: %s vs %s", first, second)
	}
}

func TestRunDefaultPassword(t *testing.T) {
	var buf bytes.Buffer
	params := InvocationParameters{Type: "i", TimeCost: 1, MemoryCost: 64, Lanes: 1, Threads: 1}
	if err := Run(params, NewReporter(&buf)); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(buf.String(), "\tpassword = password\n") {
		t.Fatalf("expected the default password, got:\n%s", buf.String())
	}
}

func TestRunWrongType(t *testing.T) {
	var buf bytes.Buffer
	params := InvocationParameters{Type: "q", TimeCost: 1, MemoryCost: 64, Lanes: 1, Threads: 1}
	if err := Run(params, NewReporter(&buf)); !errors.Is(err, ErrWrongType) {
		t.Fatalf("got %v, want %v", err, ErrWrongType)
	}
}

func TestRunSurfacesPrimitiveStatus(t *testing.T) {
	var buf bytes.Buffer
	// Lanes clamped to zero by the boundary rule; the primitive refuses it
	// and the run path must report that instead of swallowing it.
	params := InvocationParameters{Type: "d", TimeCost: 1, MemoryCost: 64, Lanes: 0, Threads: 1}
	if err := Run(params, NewReporter(&buf)); err == nil {
		t.Fatal("expected an error for zero lanes")
	}
}

func TestRunDoesNotMutateCallerPassword(t *testing.T) {
	var buf bytes.Buffer
	pwd := []byte("caller-owned")
	params := InvocationParameters{Type: "i", TimeCost: 1, MemoryCost: 64, Lanes: 1, Threads: 1, Password: pwd}
	if err := Run(params, NewReporter(&buf)); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if string(pwd) != "caller-owned" {
		t.Fatalf("caller's password buffer was mutated: %q", pwd)
	}
}
