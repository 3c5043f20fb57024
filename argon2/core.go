package argon2

import (
	"encoding/binary"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// deriveKey runs one full invocation: validate, pre-hash, fill, finalize.
// The schedule and addressing follow RFC 9106 for version 0x13, so the
// data-independent variant produces the same tags as
// golang.org/x/crypto/argon2 for matching parameters.
func deriveKey(c *Context, v Variant) error {
	if err := c.Validate(); err != nil {
		return err
	}

	h0 := initHash(c, v)

	// Effective memory: a multiple of 4*lanes, at least 8 blocks per lane.
	memory := c.MemoryCost / (syncPoints * c.Lanes) * (syncPoints * c.Lanes)
	if memory < 2*syncPoints*c.Lanes {
		memory = 2 * syncPoints * c.Lanes
	}

	blocks, err := c.allocateMemory(memory)
	if err != nil {
		return err
	}
	defer c.releaseMemory(blocks)

	kat := newKATState(c, v, h0[:blake2b.Size], memory)
	kat.writeHeader()

	initBlocks(&h0, blocks, memory, c.Lanes)
	processBlocks(blocks, c, v, memory, kat)
	extractKey(blocks, memory, c.Lanes, c.Out)

	kat.writeTag(c.Out)
	c.scrubInputs()
	return kat.err()
}

// initHash computes H0, the 64-byte pre-hashing digest, from every input
// parameter. The trailing 8 bytes of the returned buffer are scratch space
// for the per-block counter and lane index used by initBlocks.
func initHash(c *Context, v Variant) [blake2b.Size + 8]byte {
	var (
		h0     [blake2b.Size + 8]byte
		params [24]byte
		tmp    [4]byte
	)

	b2, _ := blake2b.New512(nil)
	binary.LittleEndian.PutUint32(params[0:4], c.Lanes)
	binary.LittleEndian.PutUint32(params[4:8], uint32(len(c.Out)))
	binary.LittleEndian.PutUint32(params[8:12], c.MemoryCost)
	binary.LittleEndian.PutUint32(params[12:16], c.TimeCost)
	binary.LittleEndian.PutUint32(params[16:20], Version)
	binary.LittleEndian.PutUint32(params[20:24], uint32(v))
	b2.Write(params[:])
	writeLenPrefixed(b2, tmp[:], c.Password)
	writeLenPrefixed(b2, tmp[:], c.Salt)
	writeLenPrefixed(b2, tmp[:], c.Secret)
	writeLenPrefixed(b2, tmp[:], c.AssociatedData)
	b2.Sum(h0[:0])
	return h0
}

func writeLenPrefixed(h hash.Hash, tmp, data []byte) {
	binary.LittleEndian.PutUint32(tmp, uint32(len(data)))
	h.Write(tmp)
	h.Write(data)
}

// initBlocks derives the first two blocks of every lane from H0.
func initBlocks(h0 *[blake2b.Size + 8]byte, blocks []Block, memory, lanes uint32) {
	var block0 [blockSize]byte
	laneLength := memory / lanes
	for lane := uint32(0); lane < lanes; lane++ {
		j := lane * laneLength
		binary.LittleEndian.PutUint32(h0[blake2b.Size+4:], lane)

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 0)
		hashLong(block0[:], h0[:])
		for i := range blocks[j+0] {
			blocks[j+0][i] = binary.LittleEndian.Uint64(block0[i*8:])
		}

		binary.LittleEndian.PutUint32(h0[blake2b.Size:], 1)
		hashLong(block0[:], h0[:])
		for i := range blocks[j+1] {
			blocks[j+1][i] = binary.LittleEndian.Uint64(block0[i*8:])
		}
	}
}

// processBlocks fills the working memory, synchronizing all lanes at every
// slice boundary. Threads caps the number of worker goroutines; it never
// changes the produced tag, which depends on Lanes alone.
func processBlocks(blocks []Block, c *Context, v Variant, memory uint32, kat *katState) {
	lanes := c.Lanes
	laneLength := memory / lanes
	segmentLength := laneLength / syncPoints

	processSegment := func(n, slice, lane uint32) {
		var addresses, in, zero Block
		dataIndependent := v == VariantI
		if dataIndependent {
			in[0] = uint64(n)
			in[1] = uint64(lane)
			in[2] = uint64(slice)
			in[3] = uint64(memory)
			in[4] = uint64(c.TimeCost)
			in[5] = uint64(v)
		}

		index := uint32(0)
		if n == 0 && slice == 0 {
			index = 2 // first two blocks of each lane come from H0
			if dataIndependent {
				in[6]++
				processBlock(&addresses, &in, &zero, false)
				processBlock(&addresses, &addresses, &zero, false)
			}
		}

		offset := lane*laneLength + slice*segmentLength + index
		var random uint64
		for index < segmentLength {
			prev := offset - 1
			if index == 0 && slice == 0 {
				prev += laneLength // wrap to the last block of the lane
			}
			if dataIndependent {
				if index%blockWords == 0 {
					in[6]++
					processBlock(&addresses, &in, &zero, false)
					processBlock(&addresses, &addresses, &zero, false)
				}
				random = addresses[index%blockWords]
			} else {
				random = blocks[prev][0]
			}
			ref := indexAlpha(random, laneLength, segmentLength, lanes, n, slice, lane, index)
			processBlock(&blocks[offset], &blocks[prev], &blocks[ref], true)
			index, offset = index+1, offset+1
		}
	}

	workers := c.Threads
	if workers > lanes {
		workers = lanes
	}

	for n := uint32(0); n < c.TimeCost; n++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var wg sync.WaitGroup
			laneCh := make(chan uint32, lanes)
			for w := uint32(0); w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for lane := range laneCh {
						processSegment(n, slice, lane)
					}
				}()
			}
			for lane := uint32(0); lane < lanes; lane++ {
				laneCh <- lane
			}
			close(laneCh)
			wg.Wait()
		}
		kat.writePass(n, blocks)
	}
}

// extractKey XORs the final block of every lane and hashes the result down
// to the requested tag length.
func extractKey(blocks []Block, memory, lanes uint32, out []byte) {
	laneLength := memory / lanes
	var final Block
	for lane := uint32(0); lane < lanes; lane++ {
		for i, w := range blocks[lane*laneLength+laneLength-1] {
			final[i] ^= w
		}
	}
	var raw [blockSize]byte
	for i, w := range final {
		binary.LittleEndian.PutUint64(raw[i*8:], w)
	}
	hashLong(out, raw[:])
}
