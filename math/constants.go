package math

import (
	"math/big"
	"sync"

	"github.com/dmoreau-labs/decimal"
)

// constantSet holds every value the Constants component precomputes,
// generated once per distinct (decimals, Pi terms, E terms) combination
// and cached thereafter -- the teacher's math/pi.go caches a single
// package-level Pi value the same way, just for one constant instead of
// the full dependency-ordered set this package needs.
type constantSet struct {
	e, invPi, pi, pi2, pi4, twoOverPi, twoOverSqrtPi decimal.Decimal
	ln2, ln10, log2E, log10E, sqrt2, invSqrt2         decimal.Decimal
}

type constKey struct {
	decimals, piTerms, eTerms int
}

var (
	constMu    sync.RWMutex
	constCache = map[constKey]*constantSet{}
)

func getConstants(cfg decimal.Config) *constantSet {
	key := constKey{decimals: cfg.Decimals, piTerms: cfg.Pi, eTerms: cfg.E}
	constMu.RLock()
	cs, ok := constCache[key]
	constMu.RUnlock()
	if ok {
		return cs
	}
	constMu.Lock()
	defer constMu.Unlock()
	if cs, ok := constCache[key]; ok {
		return cs
	}
	cs = generateConstants(cfg)
	constCache[key] = cs
	return cs
}

// generateConstants builds the full constantSet in the dependency order
// the Constants component specifies: E, then 1/Pi via Chudnovsky, then
// Pi and its derived values, then the natural logs, then the base-change
// logs, then the square roots.
func generateConstants(cfg decimal.Config) *constantSet {
	cfg.ThrowOnError = false
	wc := widen(cfg)
	cs := &constantSet{}

	cs.e = Exp(decimal.FromInt64Config(1, wc))

	cs.invPi = chudnovskyInvPi(wc)
	one := decimal.FromInt64Config(1, wc)
	two := decimal.FromInt64Config(2, wc)
	four := decimal.FromInt64Config(4, wc)
	cs.pi = decimal.Divide(one, cs.invPi)
	cs.pi2 = cs.pi.Divide(two)
	cs.pi4 = cs.pi.Divide(four)
	cs.twoOverPi = two.Mul(cs.invPi)
	cs.twoOverSqrtPi = two.Divide(improvisedSqrt(cs.pi, wc))

	// Computed via lnRaw directly, not Ln, so the k*ln(2) step inside the
	// ln(10) reduction doesn't call back through Ln2Config into
	// getConstants -- getConstants is already holding its write lock to
	// build this very constantSet, and sync.RWMutex isn't reentrant.
	cs.ln2 = lnRaw(decimal.FromInt64Config(2, wc), wc, nil)
	cs.ln10 = lnRaw(decimal.FromInt64Config(10, wc), wc, &cs.ln2)
	cs.log2E = one.Divide(cs.ln2)
	cs.log10E = one.Divide(cs.ln10)
	cs.sqrt2 = improvisedSqrt(two, wc)
	cs.invSqrt2 = one.Divide(cs.sqrt2)

	finishAll := []*decimal.Decimal{
		&cs.e, &cs.invPi, &cs.pi, &cs.pi2, &cs.pi4, &cs.twoOverPi, &cs.twoOverSqrtPi,
		&cs.ln2, &cs.ln10, &cs.log2E, &cs.log10E, &cs.sqrt2, &cs.invSqrt2,
	}
	for _, v := range finishAll {
		*v = finish(*v, cfg)
	}
	return cs
}

// chudnovskyTermDigits is the approximate number of correct decimal
// digits each Chudnovsky series term contributes (log10(640320^3/12^3),
// commonly cited as ~14.1816).
const chudnovskyTermDigits = 14

// chudnovskyInvPi computes 1/pi via the Chudnovsky series named in the
// component design:
//
//	1/pi = (12/C^1.5) * Sum_{k=0}^{n-1} (-1)^k (6k)! (B*k+A) / ((3k)! (k!)^3 C^(3k))
//
// with the standard Chudnovsky constants A=13591409, B=545140134,
// C=640320. The series' exact rational terms are accumulated in a
// big.Rat (no precision is lost doing integer/rational arithmetic), then
// converted to a Decimal and divided by the irrational sqrt(C) factor via
// improvisedSqrt.
//
// cfg.Pi names a minimum term count, but since each term only carries
// about chudnovskyTermDigits correct digits, at least enough terms to
// cover the requested precision are always used even if cfg.Pi is set
// lower -- a literal single-term default could not otherwise deliver a
// Pi() matching many requested digits of precision.
func chudnovskyInvPi(cfg decimal.Config) decimal.Decimal {
	const A = 13591409
	const B = 545140134
	const C = 640320

	minTerms := cfg.Pi
	needed := cfg.Decimals/chudnovskyTermDigits + 2
	if needed > minTerms {
		minTerms = needed
	}
	if minTerms < 1 {
		minTerms = 1
	}

	c3 := new(big.Int).Exp(big.NewInt(C), big.NewInt(3), nil)
	sum := new(big.Rat)
	sixKFact := big.NewInt(1)
	threeKFact := big.NewInt(1)
	kFact := big.NewInt(1)
	negC3ToK := big.NewInt(1)

	for k := 0; k < minTerms; k++ {
		if k > 0 {
			for i := int64(6*k - 5); i <= int64(6*k); i++ {
				sixKFact.Mul(sixKFact, big.NewInt(i))
			}
			for i := int64(3*k - 2); i <= int64(3*k); i++ {
				threeKFact.Mul(threeKFact, big.NewInt(i))
			}
			kFact.Mul(kFact, big.NewInt(int64(k)))
			negC3ToK.Mul(negC3ToK, new(big.Int).Neg(c3))
		}
		num := new(big.Int).Mul(sixKFact, big.NewInt(B*int64(k)+A))
		kFact3 := new(big.Int).Exp(kFact, big.NewInt(3), nil)
		den := new(big.Int).Mul(threeKFact, kFact3)
		den.Mul(den, negC3ToK)
		term := new(big.Rat).SetFrac(num, den)
		sum.Add(sum, term)
	}

	rationalPart := new(big.Rat).Mul(sum, big.NewRat(12, C))
	ratStr := rationalPart.FloatString(cfg.Decimals + 4)
	ratDec, err := decimal.ParseString(ratStr, cfg)
	if err != nil {
		ratDec = decimal.Zero().WithConfig(cfg)
	}
	sqrtC := improvisedSqrt(decimal.FromInt64Config(C, cfg), cfg)
	return decimal.Divide(ratDec, sqrtC)
}

// E returns Euler's number under the default Config.
func E() decimal.Decimal { return EConfig(decimal.DefaultConfig()) }

// EConfig returns Euler's number under cfg.
func EConfig(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).e.WithConfig(cfg) }

// Pi returns pi under the default Config.
func Pi() decimal.Decimal { return PiConfig(decimal.DefaultConfig()) }

// PiConfig returns pi under cfg.
func PiConfig(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).pi.WithConfig(cfg) }

// InvPi returns 1/pi under the default Config.
func InvPi() decimal.Decimal { return InvPiConfig(decimal.DefaultConfig()) }

// InvPiConfig returns 1/pi under cfg.
func InvPiConfig(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).invPi.WithConfig(cfg) }

// Pi2 returns pi/2 under the default Config.
func Pi2() decimal.Decimal { return Pi2Config(decimal.DefaultConfig()) }

// Pi2Config returns pi/2 under cfg.
func Pi2Config(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).pi2.WithConfig(cfg) }

// Pi4 returns pi/4 under the default Config.
func Pi4() decimal.Decimal { return Pi4Config(decimal.DefaultConfig()) }

// Pi4Config returns pi/4 under cfg.
func Pi4Config(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).pi4.WithConfig(cfg) }

// TwoOverPi returns 2/pi under the default Config.
func TwoOverPi() decimal.Decimal { return TwoOverPiConfig(decimal.DefaultConfig()) }

// TwoOverPiConfig returns 2/pi under cfg.
func TwoOverPiConfig(cfg decimal.Config) decimal.Decimal {
	return getConstants(cfg).twoOverPi.WithConfig(cfg)
}

// TwoOverSqrtPi returns 2/sqrt(pi) under the default Config.
func TwoOverSqrtPi() decimal.Decimal { return TwoOverSqrtPiConfig(decimal.DefaultConfig()) }

// TwoOverSqrtPiConfig returns 2/sqrt(pi) under cfg.
func TwoOverSqrtPiConfig(cfg decimal.Config) decimal.Decimal {
	return getConstants(cfg).twoOverSqrtPi.WithConfig(cfg)
}

// Ln2Config returns ln(2) under cfg.
func Ln2Config(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).ln2.WithConfig(cfg) }

// Ln2 returns ln(2) under the default Config.
func Ln2() decimal.Decimal { return Ln2Config(decimal.DefaultConfig()) }

// Ln10Config returns ln(10) under cfg.
func Ln10Config(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).ln10.WithConfig(cfg) }

// Ln10 returns ln(10) under the default Config.
func Ln10() decimal.Decimal { return Ln10Config(decimal.DefaultConfig()) }

// Log2EConfig returns log2(e) under cfg.
func Log2EConfig(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).log2E.WithConfig(cfg) }

// Log2E returns log2(e) under the default Config.
func Log2E() decimal.Decimal { return Log2EConfig(decimal.DefaultConfig()) }

// Log10EConfig returns log10(e) under cfg.
func Log10EConfig(cfg decimal.Config) decimal.Decimal {
	return getConstants(cfg).log10E.WithConfig(cfg)
}

// Log10E returns log10(e) under the default Config.
func Log10E() decimal.Decimal { return Log10EConfig(decimal.DefaultConfig()) }

// Sqrt2Config returns sqrt(2) under cfg.
func Sqrt2Config(cfg decimal.Config) decimal.Decimal { return getConstants(cfg).sqrt2.WithConfig(cfg) }

// Sqrt2 returns sqrt(2) under the default Config.
func Sqrt2() decimal.Decimal { return Sqrt2Config(decimal.DefaultConfig()) }

// InvSqrt2Config returns 1/sqrt(2) under cfg.
func InvSqrt2Config(cfg decimal.Config) decimal.Decimal {
	return getConstants(cfg).invSqrt2.WithConfig(cfg)
}

// InvSqrt2 returns 1/sqrt(2) under the default Config.
func InvSqrt2() decimal.Decimal { return InvSqrt2Config(decimal.DefaultConfig()) }
