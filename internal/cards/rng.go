package cards

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
)

// byteStream yields a deterministic byte sequence from an HMAC-SHA256 chain
// keyed on the shoe seed. Each round of play gets an independent stream, so
// successive shoes under the same seed are still distinct permutations.
type byteStream struct {
	seed  string
	round uint64
	block uint64
	pos   int
	buf   [32]byte
}

func newByteStream(seed string, round uint64) *byteStream {
	bs := &byteStream{seed: seed, round: round}
	bs.fill()
	return bs
}

func (bs *byteStream) fill() {
	h := hmac.New(sha256.New, []byte(bs.seed))
	fmt.Fprintf(h, "%d:%d", bs.round, bs.block)
	copy(bs.buf[:], h.Sum(nil))
}

func (bs *byteStream) next() byte {
	if bs.pos >= len(bs.buf) {
		bs.block++
		bs.pos = 0
		bs.fill()
	}
	b := bs.buf[bs.pos]
	bs.pos++
	return b
}

// nextFloat converts four stream bytes to a float in [0, 1).
func (bs *byteStream) nextFloat() float64 {
	result := 0.0
	for i := 1; i <= 4; i++ {
		result += float64(bs.next()) / math.Pow(256, float64(i))
	}
	return result
}
