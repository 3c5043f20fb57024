// Package argon2 implements the Argon2 memory-hard password hashing function,
// version 1.3, in its data-dependent (Argon2d) and data-independent (Argon2i)
// variants.
//
// # Functional contract
//
// Callers populate a [Context] with every input, output, and behavior flag for
// one invocation, then call [Argon2d] or [Argon2i]. On success exactly
// len(Context.Out) bytes are written into the output buffer. A non-nil error
// identifies the specific failure kind (parameter out of range, allocation
// failure, diagnostic write failure); the memory state is unspecified after a
// failed call.
//
// # Output format
//
// [EncodeString] renders a context and its produced tag in PHC string format:
//
//	$argon2<d|i>$v=19$m=<memory>,t=<time>,p=<lanes>$<salt>$<hash>
//
// # Diagnostics
//
// When Context.KATWriter is set, the invocation additionally emits a
// deterministic known-answer-test trace: the input parameters, the pre-hashing
// digest, the first word of every memory block after each pass, and the final
// tag. The trace is byte-for-byte reproducible for a fixed context.
//
// # What this package must NOT do
//
//   - Allocate or free the password, salt, secret, or output buffers — the
//     caller owns them; the package writes only into Context.Out.
//   - Retain any reference to a Context after the call returns.
//   - Import any other goArgon2 package.
package argon2
