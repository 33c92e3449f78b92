package rabinkarp

import (
	"fmt"
	"math/big"
)

// Default parameters of the polynomial hash. The base exceeds the byte
// alphabet and the modulus is the prime 10^9+7.
const (
	DefaultBase    = 257
	DefaultModulus = 1_000_000_007
)

// CodeUnit selects the code units a string is split into before it is
// searched. Offsets and lengths are counted in these units.
type CodeUnit int

const (
	// Bytes searches the UTF-8 bytes of the string.
	Bytes CodeUnit = 1 + iota
	// UTF16 searches UTF-16 code units. Characters outside the basic
	// multilingual plane occupy two units.
	UTF16
	// Runes searches Unicode code points.
	Runes
)

func (u CodeUnit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case UTF16:
		return "UTF16"
	case Runes:
		return "Runes"
	default:
		return fmt.Sprintf("CodeUnit(%d)", int(u))
	}
}

func (u CodeUnit) MarshalText() ([]byte, error) {
	switch u {
	case Bytes, UTF16, Runes:
		return []byte(u.String()), nil
	default:
		return nil, fmt.Errorf("rabinkarp: unknown CodeUnit %d", u)
	}
}

func (u *CodeUnit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Bytes":
		*u = Bytes
	case "UTF16":
		*u = UTF16
	case "Runes":
		*u = Runes
	default:
		return fmt.Errorf("rabinkarp: unknown CodeUnit %q", text)
	}
	return nil
}

// Options define the parameters of the rolling hash used by a Matcher. Zero
// values are replaced by the defaults.
type Options struct {
	// Base of the polynomial. It must satisfy 2 <= Base < Modulus.
	Base uint64 `json:",omitzero"`
	// Modulus must be a prime.
	Modulus uint64 `json:",omitzero"`
}

func (opts *Options) setDefaults() {
	if opts.Base == 0 {
		opts.Base = DefaultBase
	}
	if opts.Modulus == 0 {
		opts.Modulus = DefaultModulus
	}
}

// Verify checks the options. Zero values are not accepted, so setDefaults
// must be called first.
func (opts *Options) Verify() error {
	if opts.Modulus < 2 {
		return fmt.Errorf("rabinkarp: Modulus=%d; must be >= 2",
			opts.Modulus)
	}
	if !new(big.Int).SetUint64(opts.Modulus).ProbablyPrime(20) {
		return fmt.Errorf("rabinkarp: Modulus=%d; must be prime",
			opts.Modulus)
	}
	if !(2 <= opts.Base && opts.Base < opts.Modulus) {
		return fmt.Errorf(
			"rabinkarp: Base=%d; must be in range [2..Modulus=%d)",
			opts.Base, opts.Modulus)
	}
	return nil
}

// NewMatcher returns a matcher using the options. A nil receiver is
// equivalent to the zero Options, which selects the defaults.
func (opts *Options) NewMatcher() (*Matcher, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.setDefaults()
	if err := o.Verify(); err != nil {
		return nil, err
	}
	return &Matcher{opts: o}, nil
}
