package utils

import (
	"math"
	"math/rand/v2"
)

// DisplayRating returns a decorative star rating in [4.0, 5.0) rounded to one
// decimal and a review count in [20, 90). The same product and seed always
// give the same values.
func DisplayRating(productID int, seed uint64) (float64, int) {
	r := rand.New(rand.NewPCG(seed, uint64(productID)))
	rating := math.Floor((4+r.Float64())*10) / 10
	reviews := 20 + r.IntN(70)
	return rating, reviews
}
