package goArgon2

import (
	"io"

	"github.com/MrEthical07/goArgon2/argon2"
)

// ContextBuilder defines a public type used by goArgon2 APIs.
//
// ContextBuilder assembles one argon2.Context from named fields, replacing
// positional aggregate construction. Build validates ranges and the
// allocator/deallocator pairing before the context is ever handed to the
// primitive. A zero builder is not usable; start from [NewContext].
type ContextBuilder struct {
	ctx argon2.Context
}

// NewContext returns a builder with no fields set. Unset clear flags default
// to false and unset callbacks default to heap allocation.
func NewContext() *ContextBuilder {
	return &ContextBuilder{}
}

// WithOutput allocates a fresh output buffer of n bytes for the invocation.
func (b *ContextBuilder) WithOutput(n int) *ContextBuilder {
	b.ctx.Out = make([]byte, n)
	return b
}

// WithOutputBuffer uses a caller-owned output buffer instead of allocating one.
func (b *ContextBuilder) WithOutputBuffer(out []byte) *ContextBuilder {
	b.ctx.Out = out
	return b
}

// WithPassword sets the password buffer. The builder does not copy it; the
// caller keeps ownership and frees it exactly once after the invocation.
func (b *ContextBuilder) WithPassword(pwd []byte) *ContextBuilder {
	b.ctx.Password = pwd
	return b
}

// WithSalt sets the salt buffer.
func (b *ContextBuilder) WithSalt(salt []byte) *ContextBuilder {
	b.ctx.Salt = salt
	return b
}

// WithSecret sets the optional secret buffer.
func (b *ContextBuilder) WithSecret(secret []byte) *ContextBuilder {
	b.ctx.Secret = secret
	return b
}

// WithAssociatedData sets the optional associated-data buffer.
func (b *ContextBuilder) WithAssociatedData(ad []byte) *ContextBuilder {
	b.ctx.AssociatedData = ad
	return b
}

// WithCosts sets the time cost and the absolute memory cost in blocks.
func (b *ContextBuilder) WithCosts(timeCost, memoryCost uint32) *ContextBuilder {
	b.ctx.TimeCost = timeCost
	b.ctx.MemoryCost = memoryCost
	return b
}

// WithParallelism sets the lane and thread counts.
func (b *ContextBuilder) WithParallelism(lanes, threads uint32) *ContextBuilder {
	b.ctx.Lanes = lanes
	b.ctx.Threads = threads
	return b
}

// WithAllocator installs a custom allocator/deallocator pair. Build rejects
// a context where only one of the two is set.
func (b *ContextBuilder) WithAllocator(alloc argon2.AllocateFunc, free argon2.FreeFunc) *ContextBuilder {
	b.ctx.Allocate = alloc
	b.ctx.Free = free
	return b
}

// WithClearFlags sets the three post-use wipe flags.
func (b *ContextBuilder) WithClearFlags(password, secret, memory bool) *ContextBuilder {
	b.ctx.ClearPassword = password
	b.ctx.ClearSecret = secret
	b.ctx.ClearMemory = memory
	return b
}

// WithKATWriter enables internal-state printing into w. A nil writer leaves
// diagnostics off.
func (b *ContextBuilder) WithKATWriter(w io.Writer) *ContextBuilder {
	b.ctx.KATWriter = w
	return b
}

// Build validates the assembled context and returns it. The context is
// write-once per invocation: populate, call, discard.
func (b *ContextBuilder) Build() (*argon2.Context, error) {
	ctx := b.ctx
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}
