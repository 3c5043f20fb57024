package argon2

import (
	"bytes"
	"errors"
	"testing"

	xargon2 "golang.org/x/crypto/argon2"
)

func testContext() *Context {
	return &Context{
		Out:        make([]byte, 32),
		Password:   []byte("test-password"),
		Salt:       []byte("somesalt-16bytes"),
		TimeCost:   3,
		MemoryCost: 32,
		Lanes:      4,
		Threads:    4,
	}
}

func TestArgon2iMatchesXCrypto(t *testing.T) {
	cases := []struct {
		name   string
		time   uint32
		memory uint32
		lanes  uint32
		outLen int
	}{
		{"t3_m32_p4", 3, 32, 4, 32},
		{"t1_m64_p1", 1, 64, 1, 24},
		{"t4_m16_p2", 4, 16, 2, 32},
		{"t2_m8_p1", 2, 8, 1, 16},
	}

	password := []byte("cross-check-password")
	salt := []byte("cross-check-salt")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &Context{
				Out:        make([]byte, tc.outLen),
				Password:   append([]byte(nil), password...),
				Salt:       append([]byte(nil), salt...),
				TimeCost:   tc.time,
				MemoryCost: tc.memory,
				Lanes:      tc.lanes,
				Threads:    tc.lanes,
			}
			if err := Argon2i(ctx); err != nil {
				t.Fatalf("Argon2i error: %v", err)
			}

			want := xargon2.Key(password, salt, tc.time, tc.memory, uint8(tc.lanes), uint32(tc.outLen))
			if !bytes.Equal(ctx.Out, want) {
				t.Fatalf("tag mismatch with x/crypto reference:\n got  %x\n want %x", ctx.Out, want)
			}
		})
	}
}

func TestArgon2dDeterministic(t *testing.T) {
	first := testContext()
	if err := Argon2d(first); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	second := testContext()
	if err := Argon2d(second); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	if !bytes.Equal(first.Out, second.Out) {
		t.Fatalf("Argon2d is not deterministic: %x vs %x", first.Out, second.Out)
	}
}

func TestVariantsDiffer(t *testing.T) {
	d := testContext()
	if err := Argon2d(d); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	i := testContext()
	if err := Argon2i(i); err != nil {
		t.Fatalf("Argon2i error: %v", err)
	}
	if bytes.Equal(d.Out, i.Out) {
		t.Fatal("Argon2d and Argon2i produced identical tags")
	}
}

func TestSecretAndAssociatedDataChangeTag(t *testing.T) {
	base := testContext()
	if err := Argon2d(base); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}

	withSecret := testContext()
	withSecret.Secret = []byte{3, 3, 3, 3, 3, 3, 3, 3}
	if err := Argon2d(withSecret); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	if bytes.Equal(base.Out, withSecret.Out) {
		t.Fatal("secret did not affect the tag")
	}

	withAD := testContext()
	withAD.AssociatedData = []byte{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	if err := Argon2d(withAD); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	if bytes.Equal(base.Out, withAD.Out) {
		t.Fatal("associated data did not affect the tag")
	}
}

func TestThreadsDoNotChangeTag(t *testing.T) {
	single := testContext()
	single.Threads = 1
	if err := Argon2d(single); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}

	parallel := testContext()
	parallel.Threads = 4
	if err := Argon2d(parallel); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}

	if !bytes.Equal(single.Out, parallel.Out) {
		t.Fatalf("thread count changed the tag: %x vs %x", single.Out, parallel.Out)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Context)
		want   error
	}{
		{"output too short", func(c *Context) { c.Out = make([]byte, 2) }, ErrOutputTooShort},
		{"salt too short", func(c *Context) { c.Salt = []byte("short") }, ErrSaltTooShort},
		{"time zero", func(c *Context) { c.TimeCost = 0 }, ErrTimeTooSmall},
		{"memory too little", func(c *Context) { c.MemoryCost = 4 }, ErrMemoryTooLittle},
		{"lanes zero", func(c *Context) { c.Lanes = 0 }, ErrLanesTooFew},
		{"threads zero", func(c *Context) { c.Threads = 0 }, ErrThreadsTooFew},
		{"allocator without deallocator", func(c *Context) {
			c.Allocate = func(blocks uint32) ([]Block, error) { return make([]Block, blocks), nil }
		}, ErrCallbackPair},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			tc.mutate(ctx)
			if err := Argon2d(ctx); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	var nilCtx *Context
	if err := Argon2d(nilCtx); !errors.Is(err, ErrContextNil) {
		t.Fatalf("nil context: got %v, want %v", err, ErrContextNil)
	}
}

func TestCustomAllocator(t *testing.T) {
	reference := testContext()
	if err := Argon2d(reference); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}

	var (
		allocated []Block
		allocs    int
		frees     int
	)
	ctx := testContext()
	ctx.ClearMemory = true
	ctx.Allocate = func(blocks uint32) ([]Block, error) {
		allocs++
		allocated = make([]Block, blocks)
		return allocated, nil
	}
	ctx.Free = func(memory []Block) {
		if memory == nil {
			return // a nil slice must be a safe no-op
		}
		frees++
	}

	if err := Argon2d(ctx); err != nil {
		t.Fatalf("Argon2d error: %v", err)
	}
	if allocs != 1 || frees != 1 {
		t.Fatalf("expected one allocation and one free, got %d/%d", allocs, frees)
	}
	if !bytes.Equal(ctx.Out, reference.Out) {
		t.Fatal("custom allocator changed the tag")
	}
	for i := range allocated {
		for _, w := range allocated[i] {
			if w != 0 {
				t.Fatal("clear-memory flag did not wipe the working memory")
			}
		}
	}
}

func TestAllocationFailure(t *testing.T) {
	ctx := testContext()
	ctx.Allocate = func(blocks uint32) ([]Block, error) { return nil, errors.New("no memory") }
	ctx.Free = func([]Block) {}
	if err := Argon2d(ctx); !errors.Is(err, ErrMemoryAllocation) {
		t.Fatalf("got %v, want %v", err, ErrMemoryAllocation)
	}
}

func TestClearFlagsWipeInputs(t *testing.T) {
	ctx := testContext()
	ctx.Secret = []byte{3, 3, 3, 3, 3, 3, 3, 3}
	ctx.ClearPassword = true
	ctx.ClearSecret = true
	if err := Argon2i(ctx); err != nil {
		t.Fatalf("Argon2i error: %v", err)
	}
	for _, b := range ctx.Password {
		if b != 0 {
			t.Fatal("password was not wiped")
		}
	}
	for _, b := range ctx.Secret {
		if b != 0 {
			t.Fatal("secret was not wiped")
		}
	}
}
