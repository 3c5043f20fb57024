package argon2

import (
	"encoding/base64"
	"fmt"
)

// EncodeString renders the canonical PHC encoding of a finished invocation
// into dst and returns it as a string:
//
//	$argon2<d|i>$v=19$m=<memory>,t=<time>,p=<lanes>$<salt>$<hash>
//
// Salt and hash use unpadded standard base64. The memory figure is the
// requested block count, as supplied on the context, not the rounded
// effective value. EncodeString never truncates: when the encoding does not
// fit dst it returns [ErrEncodingTooLong] and writes nothing.
func EncodeString(dst []byte, c *Context, v Variant) (string, error) {
	if c == nil {
		return "", ErrContextNil
	}
	if v != VariantD && v != VariantI {
		return "", ErrUnknownVariant
	}

	encoded := fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		v.String(),
		Version,
		c.MemoryCost,
		c.TimeCost,
		c.Lanes,
		base64.RawStdEncoding.EncodeToString(c.Salt),
		base64.RawStdEncoding.EncodeToString(c.Out),
	)
	if len(encoded) > len(dst) {
		return "", ErrEncodingTooLong
	}
	n := copy(dst, encoded)
	return string(dst[:n]), nil
}
