package argon2

import "fmt"

// katState accumulates the known-answer-test trace for one invocation.
// A nil state (no Context.KATWriter) makes every method a no-op; the first
// write error latches and suppresses further output.
type katState struct {
	c        *Context
	v        Variant
	digest   []byte // pre-hashing digest H0
	memory   uint32 // effective block count
	writeErr error
}

func newKATState(c *Context, v Variant, digest []byte, memory uint32) *katState {
	if c.KATWriter == nil {
		return nil
	}
	return &katState{c: c, v: v, digest: digest, memory: memory}
}

func (k *katState) printf(format string, args ...any) {
	if k == nil || k.writeErr != nil {
		return
	}
	_, k.writeErr = fmt.Fprintf(k.c.KATWriter, format, args...)
}

func (k *katState) err() error {
	if k == nil {
		return nil
	}
	return k.writeErr
}

func (k *katState) writeHeader() {
	if k == nil {
		return
	}
	k.printf("=======================================\n")
	k.printf("%s version number %d\n", titleTag(k.v), Version)
	k.printf("=======================================\n")
	k.printf("Memory: %d KiB, Iterations: %d, Parallelism: %d lanes, Tag length: %d bytes\n",
		k.memory, k.c.TimeCost, k.c.Lanes, len(k.c.Out))
	k.writeBytes("Password", k.c.Password)
	k.writeBytes("Salt", k.c.Salt)
	k.writeBytes("Secret", k.c.Secret)
	k.writeBytes("Associated data", k.c.AssociatedData)
	k.printf("Pre-hashing digest: ")
	k.writeHex(k.digest)
}

func (k *katState) writeBytes(label string, data []byte) {
	k.printf("%s[%d]: ", label, len(data))
	k.writeHex(data)
}

func (k *katState) writeHex(data []byte) {
	for _, b := range data {
		k.printf("%02x ", b)
	}
	k.printf("\n")
}

// writePass dumps the first word of every block after pass n.
func (k *katState) writePass(n uint32, blocks []Block) {
	if k == nil {
		return
	}
	k.printf("\n After pass %d:\n", n)
	for i, b := range blocks {
		k.printf("Block %.4d [0]: %016x\n", i, b[0])
	}
}

func (k *katState) writeTag(out []byte) {
	if k == nil {
		return
	}
	k.printf("Tag: ")
	k.writeHex(out)
}

func titleTag(v Variant) string {
	switch v {
	case VariantD:
		return "Argon2d"
	case VariantI:
		return "Argon2i"
	default:
		return "Argon2?"
	}
}
