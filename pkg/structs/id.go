package structs

import (
	"math/rand"
	"time"
)

var alphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

func id(prefix string, size int) string {
	b := make([]rune, size)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return prefix + string(b)
}
