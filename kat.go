package goArgon2

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrEthical07/goArgon2/argon2"
)

const (
	testOutputLength   = 32
	testPasswordLength = 32
	testSaltLength     = 16
	testSecretLength   = 8
	testADLength       = 12
)

// RemoveKATFile deletes any pre-existing known-answer-test artifact so each
// generation starts from a clean file. A missing file is not an error.
func RemoveKATFile() error {
	if err := os.Remove(argon2.KATFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// GenerateTestVectors builds the one fixed, deterministic context (password
// bytes of value 1, salt of value 2, secret of value 3, associated data of
// value 4; t_cost 3, m_cost 16, 4 lanes), enables internal-state printing
// into kat, and invokes the selected variant. The caller owns the kat
// resource handle: opening, closing, and choosing where it lives.
func GenerateTestVectors(typeTag string, kat io.Writer, rep *Reporter) error {
	log := Logger().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("type", typeTag),
	)

	ctx, err := NewContext().
		WithOutput(testOutputLength).
		WithPassword(repeated(1, testPasswordLength)).
		WithSalt(repeated(2, testSaltLength)).
		WithSecret(repeated(3, testSecretLength)).
		WithAssociatedData(repeated(4, testADLength)).
		WithCosts(3, 16).
		WithParallelism(4, 4).
		WithKATWriter(kat).
		Build()
	if err != nil {
		return err
	}

	rep.Printf("Generating test vectors for Argon2%s in file %q.\n", typeTag, argon2.KATFileName)

	metrics.inc(MetricTestVectorRuns)
	if err := Dispatch(typeTag, ctx); err != nil {
		log.Error("test vector generation failed", zap.Error(err))
		return err
	}

	log.Debug("test vectors generated")
	return nil
}

func repeated(value byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = value
	}
	return b
}
