package math

import (
	"math/big"
	"sync"

	"github.com/dmoreau-labs/decimal"
)

// bernoulliCache memoizes the exact rational Bernoulli numbers computed
// so far, indexed by n. Entries are shared across every Config since the
// numbers themselves don't depend on precision -- only the final
// rounding to a Decimal does.
var (
	bernoulliMu    sync.Mutex
	bernoulliCache = []*big.Rat{big.NewRat(1, 1)} // B_0 = 1
)

// bernoulliRat returns the exact Bernoulli number B_n. It uses the
// standard recurrence
//
//	B_m = -(1/(m+1)) * Sum_{k=0}^{m-1} C(m+1, k) * B_k
//
// rather than the Chowla-Hartung closed form, extending the cache as
// needed; both derivations produce the same exact rationals. Binomial
// coefficients are built with Pascal's-triangle-style exact big.Int
// arithmetic.
func bernoulliRat(n int) *big.Rat {
	bernoulliMu.Lock()
	defer bernoulliMu.Unlock()
	for len(bernoulliCache) <= n {
		m := len(bernoulliCache)
		row := binomialRow(m + 1)
		sum := new(big.Rat)
		for k := 0; k < m; k++ {
			term := new(big.Rat).Mul(new(big.Rat).SetInt(row[k]), bernoulliCache[k])
			sum.Add(sum, term)
		}
		bm := new(big.Rat).Quo(sum, big.NewRat(int64(m+1), 1))
		bm.Neg(bm)
		bernoulliCache = append(bernoulliCache, bm)
	}
	return bernoulliCache[n]
}

// binomialRow returns [C(n,0), C(n,1), ..., C(n,n)] as exact integers.
func binomialRow(n int) []*big.Int {
	row := make([]*big.Int, n+1)
	row[0] = big.NewInt(1)
	for k := 1; k <= n; k++ {
		row[k] = new(big.Int).Mul(row[k-1], big.NewInt(int64(n-k+1)))
		row[k].Quo(row[k], big.NewInt(int64(k)))
	}
	return row
}

// Bernoulli returns the nth Bernoulli number B_n, grounded on the
// original source's SeqBernoulli / DecimalSequence recursive generator.
// n must be a non-negative integer; anything else is a domain violation.
func Bernoulli(n decimal.Decimal) decimal.Decimal {
	cfg := n.Config()
	if n.IsNaN() || !n.IsInt() || n.Sign() < 0 {
		return domainError(cfg, "Bernoulli number index must be a non-negative integer")
	}
	idx, err := n.ToInt64()
	if err != nil || idx < 0 {
		return domainError(cfg, "Bernoulli number index out of range")
	}
	if idx > 1 && idx%2 == 1 {
		return decimal.Zero().WithConfig(cfg)
	}
	r := bernoulliRat(int(idx))
	s := r.FloatString(cfg.Decimals + guardDigits)
	d, err := decimal.ParseString(s, cfg)
	if err != nil {
		return domainError(cfg, "failed to render Bernoulli number")
	}
	return finish(d, cfg)
}
