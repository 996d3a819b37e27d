package synth

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

var (
	emailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+\d+@(gmail|yahoo|outlook|hotmail|company)\.com$`)
	phonePattern = regexp.MustCompile(`^\((\d{3})\) (\d{3})-(\d{4})$`)
	moneyPattern = regexp.MustCompile(`^\d+\.\d{2}$`)
)

func TestEmailFormat(t *testing.T) {
	r := newRand(1)
	for i := 0; i < 100; i++ {
		first, last := FullName(r)
		email := Email(r, first, last, i+1)
		if !emailPattern.MatchString(email) {
			t.Errorf("email %q does not match expected pattern", email)
		}
		if !strings.HasPrefix(email, strings.ToLower(first)+"."+strings.ToLower(last)) {
			t.Errorf("email %q does not start with lowercased %s.%s", email, first, last)
		}
	}
}

func TestPhoneFormat(t *testing.T) {
	r := newRand(2)
	for i := 0; i < 200; i++ {
		phone := Phone(r)
		m := phonePattern.FindStringSubmatch(phone)
		if m == nil {
			t.Fatalf("phone %q does not match (AAA) EEE-LLLL", phone)
		}
		if m[1] < "200" || m[2] < "200" {
			t.Errorf("phone %q has area/exchange code below 200", phone)
		}
	}
}

func TestMoneyBoundsAndFormat(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{name: "credit limit range", lo: 1000, hi: 50000},
		{name: "product price range", lo: 9.99, hi: 999.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRand(3)
			for i := 0; i < 500; i++ {
				v := Money(r, tt.lo, tt.hi)
				if v < tt.lo || v > tt.hi {
					t.Fatalf("Money(%v, %v) = %v, out of range", tt.lo, tt.hi, v)
				}
				if s := FormatMoney(v); !moneyPattern.MatchString(s) {
					t.Fatalf("FormatMoney(%v) = %q, want exactly 2 fractional digits", v, s)
				}
			}
		})
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		// 0.125 and 0.375 are exact in binary, so they hit the tie
		// and must round away from zero.
		{in: 0.125, want: 0.13},
		{in: 0.375, want: 0.38},
		{in: 1.004, want: 1.0},
		{in: 999.994, want: 999.99},
	}

	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyKeepsTrailingZeros(t *testing.T) {
	if got := FormatMoney(1234.5); got != "1234.50" {
		t.Errorf("FormatMoney(1234.5) = %q, want \"1234.50\"", got)
	}
	if got := FormatMoney(42); got != "42.00" {
		t.Errorf("FormatMoney(42) = %q, want \"42.00\"", got)
	}
}

func TestCityStatePairing(t *testing.T) {
	r := newRand(4)
	for i := 0; i < 100; i++ {
		city, state := CityState(r)
		found := false
		for j, c := range cities {
			if c == city && states[j] == state {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("CityState returned unpaired %q/%q", city, state)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 1, 10, 30, 5, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2025-01-01 10:30:05" {
		t.Errorf("FormatTimestamp = %q, want \"2025-01-01 10:30:05\"", got)
	}
}

func TestMinutesWithinInclusive(t *testing.T) {
	r := newRand(5)
	seen := make(map[time.Duration]bool)
	for i := 0; i < 2000; i++ {
		d := MinutesWithin(r, 30)
		if d < 0 || d > 30*time.Minute {
			t.Fatalf("MinutesWithin(30) = %v, out of range", d)
		}
		seen[d] = true
	}
	// Both ends must be reachable: randint semantics are inclusive.
	if !seen[0] || !seen[30*time.Minute] {
		t.Errorf("MinutesWithin(30) never produced an endpoint (0: %v, 30m: %v)", seen[0], seen[30*time.Minute])
	}
}

func TestIdentifierFormats(t *testing.T) {
	if got := ProductID(7); got != "PROD-0007" {
		t.Errorf("ProductID(7) = %q, want \"PROD-0007\"", got)
	}
	if got := ProductID(1234); got != "PROD-1234" {
		t.Errorf("ProductID(1234) = %q, want \"PROD-1234\"", got)
	}

	supplierPattern := regexp.MustCompile(`^SUP-(\d{3})$`)
	r := newRand(6)
	for i := 0; i < 200; i++ {
		sup := SupplierID(r)
		m := supplierPattern.FindStringSubmatch(sup)
		if m == nil {
			t.Fatalf("SupplierID = %q, want SUP-%%03d", sup)
		}
		if m[1] < "001" || m[1] > "020" {
			t.Errorf("SupplierID = %q, numeric part out of [1,20]", sup)
		}
	}
}

func TestActiveFlagValues(t *testing.T) {
	r := newRand(7)
	trues := 0
	for i := 0; i < 4000; i++ {
		switch v := ActiveFlag(r); v {
		case "true":
			trues++
		case "false":
		default:
			t.Fatalf("ActiveFlag = %q, want \"true\" or \"false\"", v)
		}
	}
	// Skewed pool is 3:1; anything near even or beyond would mean the
	// wrong pool is wired in.
	if trues < 2800 || trues > 3200 {
		t.Errorf("ActiveFlag produced %d/4000 true values, want ~3000", trues)
	}

	for i := 0; i < 100; i++ {
		if v := ActiveFlagEven(r); v != "true" && v != "false" {
			t.Fatalf("ActiveFlagEven = %q, want \"true\" or \"false\"", v)
		}
	}
}

func TestDrawSequenceDeterminism(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for i := 0; i < 100; i++ {
		fa, la := FullName(a)
		fb, lb := FullName(b)
		if fa != fb || la != lb {
			t.Fatalf("same-seed sources diverged at draw %d: %s %s vs %s %s", i, fa, la, fb, lb)
		}
		if Phone(a) != Phone(b) {
			t.Fatalf("same-seed phones diverged at draw %d", i)
		}
		if Money(a, 1000, 50000) != Money(b, 1000, 50000) {
			t.Fatalf("same-seed money draws diverged at draw %d", i)
		}
	}
}
