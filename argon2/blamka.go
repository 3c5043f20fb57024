package argon2

import "math/bits"

// fBlaMka is the multiplication-hardened addition a + b + 2*trunc32(a)*trunc32(b).
func fBlaMka(x, y uint64) uint64 {
	return x + y + 2*(x&0xFFFFFFFF)*(y&0xFFFFFFFF)
}

func blamkaMix(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = bits.RotateLeft64(d^a, -32)
	c = fBlaMka(c, d)
	b = bits.RotateLeft64(b^c, -24)
	a = fBlaMka(a, b)
	d = bits.RotateLeft64(d^a, -16)
	c = fBlaMka(c, d)
	b = bits.RotateLeft64(b^c, -63)
	return a, b, c, d
}

// blamkaRound applies the BlaMka permutation to 16 words: four column mixes
// followed by four diagonal mixes, as in the BLAKE2b round function.
func blamkaRound(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = blamkaMix(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = blamkaMix(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = blamkaMix(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = blamkaMix(v[3], v[7], v[11], v[15])
	v[0], v[5], v[10], v[15] = blamkaMix(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = blamkaMix(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = blamkaMix(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = blamkaMix(v[3], v[4], v[9], v[14])
}

// processBlock computes the compression function G(in1, in2) into out.
// With xor set, the result is XORed into out instead of overwriting it
// (second and later passes).
func processBlock(out, in1, in2 *Block, xor bool) {
	var t Block
	for i := range t {
		t[i] = in1[i] ^ in2[i]
	}

	var v [16]uint64

	// Row-wise: eight groups of 16 consecutive words.
	for i := 0; i < blockWords; i += 16 {
		copy(v[:], t[i:i+16])
		blamkaRound(&v)
		copy(t[i:i+16], v[:])
	}

	// Column-wise: eight two-word columns across the rows.
	for i := 0; i < blockWords/8; i += 2 {
		for j := 0; j < 8; j++ {
			v[2*j] = t[16*j+i]
			v[2*j+1] = t[16*j+i+1]
		}
		blamkaRound(&v)
		for j := 0; j < 8; j++ {
			t[16*j+i] = v[2*j]
			t[16*j+i+1] = v[2*j+1]
		}
	}

	if xor {
		for i := range t {
			out[i] ^= in1[i] ^ in2[i] ^ t[i]
		}
	} else {
		for i := range t {
			out[i] = in1[i] ^ in2[i] ^ t[i]
		}
	}
}
