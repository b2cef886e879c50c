package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const (
	orderIDLength  = 9
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateOrderID returns a short base36 order reference, e.g. "k3f9x02qa".
func GenerateOrderID() string {
	max := big.NewInt(int64(len(base36Alphabet)))

	buf := make([]byte, orderIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// fallback: time-based entropy
			s := strconv.FormatInt(time.Now().UnixNano(), 36)
			return s[len(s)-orderIDLength:]
		}
		buf[i] = base36Alphabet[n.Int64()]
	}

	return string(buf)
}
