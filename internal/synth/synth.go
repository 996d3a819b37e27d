// Package synth produces individual realistic field values from an
// explicitly passed random source. Every function that draws consumes a
// fixed number of draws, and the caller controls draw order; together
// with a seeded source that makes the whole output reproducible.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the wire format for every timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// intBetween draws a uniform integer in [lo, hi], both ends inclusive.
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// FullName draws a first and last name from the fixed pools.
func FullName(r *rand.Rand) (first, last string) {
	first = firstNames[r.IntN(len(firstNames))]
	last = lastNames[r.IntN(len(lastNames))]
	return first, last
}

// CityState draws one index and returns the city/state pair at that
// index. The pair is never split across two draws.
func CityState(r *rand.Rand) (city, state string) {
	i := r.IntN(len(cities))
	return cities[i], states[i]
}

// CityOnly draws a city without touching its paired state. Used by
// customer mutations that relocate a customer but keep the state column
// as-is.
func CityOnly(r *rand.Rand) string {
	return cities[r.IntN(len(cities))]
}

// Email composes first.last{id}@{domain} with a uniformly drawn domain.
func Email(r *rand.Rand, first, last string, id int) string {
	domain := emailDomains[r.IntN(len(emailDomains))]
	return strings.ToLower(first) + "." + strings.ToLower(last) + strconv.Itoa(id) + "@" + domain
}

// Phone composes a US phone number "(AAA) EEE-LLLL". Area and exchange
// codes are uniform in [200,999], the line number in [1000,9999].
func Phone(r *rand.Rand) string {
	area := intBetween(r, 200, 999)
	exchange := intBetween(r, 200, 999)
	line := intBetween(r, 1000, 9999)
	return fmt.Sprintf("(%d) %d-%d", area, exchange, line)
}

// Money draws a uniform value in [lo, hi) and rounds it to cents.
func Money(r *rand.Rand, lo, hi float64) float64 {
	return RoundCents(lo + r.Float64()*(hi-lo))
}

// Factor draws a uniform multiplier in [lo, hi). Used to rescale prices
// in delta generations.
func Factor(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RoundCents rounds half away from zero to 2 fractional digits.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders a monetary value with exactly 2 fractional digits.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatTimestamp renders a timestamp in the fixed wire format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// MinutesWithin draws a whole-minute offset in [0, n] inclusive.
func MinutesWithin(r *rand.Rand, n int) time.Duration {
	return time.Duration(intBetween(r, 0, n)) * time.Minute
}

// StockQuantity draws a stock level in [0, 500] inclusive.
func StockQuantity(r *rand.Rand) int {
	return intBetween(r, 0, 500)
}

// SupplierID draws a supplier reference "SUP-%03d" with the numeric part
// in [1, 20] inclusive.
func SupplierID(r *rand.Rand) string {
	return fmt.Sprintf("SUP-%03d", intBetween(r, 1, 20))
}

// ProductID renders the fixed-width product identifier for a numeric id.
func ProductID(id int) string {
	return fmt.Sprintf("PROD-%04d", id)
}

// Category draws a product category.
func Category(r *rand.Rand) string {
	return productCategories[r.IntN(len(productCategories))]
}

// ProductName composes "{Adjective} {Noun} {id}".
func ProductName(r *rand.Rand, id int) string {
	adj := productAdjectives[r.IntN(len(productAdjectives))]
	noun := productNouns[r.IntN(len(productNouns))]
	return adj + " " + noun + " " + strconv.Itoa(id)
}

var activeFlagSkewed = []string{"true", "true", "true", "false"} // 75% active
var activeFlagEven = []string{"true", "false"}

// ActiveFlag draws the is_active flag with a 75% true bias.
func ActiveFlag(r *rand.Rand) string {
	return activeFlagSkewed[r.IntN(len(activeFlagSkewed))]
}

// ActiveFlagEven draws the is_active flag with even odds.
func ActiveFlagEven(r *rand.Rand) string {
	return activeFlagEven[r.IntN(len(activeFlagEven))]
}
