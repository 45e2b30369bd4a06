package ports

import "math/rand"

type Random interface {
	Intn(n int) int
}

type SystemRandom struct{}

func (SystemRandom) Intn(n int) int {
	return rand.Intn(n)
}
