package argon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// hashLong is the variable-length hash H' from the Argon2 specification
// (section 3.3): plain BLAKE2b for outputs up to 64 bytes, otherwise a chain
// of 64-byte digests contributing 32 bytes each, with the final digest sized
// to the remainder.
func hashLong(out, in []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(out)))

	if len(out) <= blake2b.Size {
		h, _ := blake2b.New(len(out), nil)
		h.Write(lenBuf[:])
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	h, _ := blake2b.New512(nil)
	h.Write(lenBuf[:])
	h.Write(in)
	var v [blake2b.Size]byte
	h.Sum(v[:0])
	copy(out, v[:blake2b.Size/2])
	out = out[blake2b.Size/2:]

	for len(out) > blake2b.Size {
		h.Reset()
		h.Write(v[:])
		h.Sum(v[:0])
		copy(out, v[:blake2b.Size/2])
		out = out[blake2b.Size/2:]
	}

	h, _ = blake2b.New(len(out), nil)
	h.Write(v[:])
	h.Sum(out[:0])
}
