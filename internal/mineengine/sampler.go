package mineengine

import "gonum.org/v1/gonum/stat/distuv"

// numDistribution is the convolved distribution of the target's final
// displayed number: numProbs is the probability
// of each displayed value 0..8, unconstProbs is the binomial mass over
// how many of the unconstrained cells are mines, and unconstByNum is
// the weighted expected fraction of unconstrained cells that are mines
// (expected count divided by the unconstrained cell count) for each
// displayed value.
type numDistribution struct {
	numProbs     [9]float32
	unconstProbs [9]float32
	unconstByNum [9]float32
}

// convolve combines the unknowns-only
// validByNum tally convolved with the binomial prior over the
// unconstrained cells yields the true distribution of the target's
// displayed number, via gonum's binomial PMF.
func (sw *smallWorld) convolve(density float32) numDistribution {
	var dist numDistribution

	binom := distuv.Binomial{N: float64(len(sw.unconstrained)), P: float64(density)}
	for k := 0; k <= 8; k++ {
		dist.unconstProbs[k] = float32(binom.Prob(float64(k)))
	}

	unconstCount := len(sw.unconstrained)
	for num := 0; num <= 8; num++ {
		var p, e float32
		for k := 0; k <= num; k++ {
			base := num - k
			contrib := sw.validByNum[base] * dist.unconstProbs[k]
			p += contrib
			if unconstCount > 0 {
				e += contrib * float32(k) / float32(unconstCount)
			}
		}
		dist.numProbs[num] = p
		dist.unconstByNum[num] = e
	}
	return dist
}

// leavesSafeCell reports whether displaying num would leave at least
// one small-world cell definitely safe: an unknown guaranteed not to
// be a mine given num, or -- when there is at least one unconstrained
// cell -- an expectation of zero unconstrained mines.
func (sw *smallWorld) leavesSafeCell(num int, dist numDistribution) bool {
	if len(sw.unconstrained) > 0 && dist.unconstByNum[num] == 0 {
		return true
	}
	for i := range sw.unknowns {
		if sw.counts[i][num] == 0 {
			return true
		}
	}
	return false
}

// sampleNum draws the target's displayed number as a weighted
// categorical choice, restricted to
// solvability-preserving values when the field demands solvability and
// at least one such value exists -- per the redesigned behavior, it
// otherwise MUST fall back to the unrestricted distribution rather
// than refuse -- and forced to zero on the first reveal of the game
// when that remains consistent with the distribution.
func (f *Field) sampleNum(sw *smallWorld, dist numDistribution, firstZero bool) uint8 {
	if firstZero && f.riskCache.len() == 0 && dist.numProbs[0] > 0 {
		return 0
	}

	var candidates [9]bool
	restricted := false
	if f.solvable && f.riskCache.globalBest() > 0 {
		for num := 0; num <= 8; num++ {
			if dist.numProbs[num] > 0 && sw.leavesSafeCell(num, dist) {
				candidates[num] = true
				restricted = true
			}
		}
	}
	if !restricted {
		for num := 0; num <= 8; num++ {
			candidates[num] = dist.numProbs[num] > 0
		}
	}

	var total float32
	for num := 0; num <= 8; num++ {
		if candidates[num] {
			total += dist.numProbs[num]
		}
	}
	if total <= 0 {
		return 0
	}

	roll := f.rng.Float32() * total
	var acc float32
	for num := 0; num <= 8; num++ {
		if !candidates[num] {
			continue
		}
		acc += dist.numProbs[num]
		if roll < acc {
			return uint8(num)
		}
	}
	for num := 8; num >= 0; num-- {
		if candidates[num] {
			return uint8(num)
		}
	}
	return 0
}

// unknownRisk computes a single unknown's posterior mine probability
// conditioned on the chosen displayed
// number.
func (sw *smallWorld) unknownRisk(i int, num int, dist numDistribution) float32 {
	if dist.numProbs[num] <= 0 {
		return 0
	}
	var sum float32
	for k := 0; k <= num; k++ {
		sum += sw.counts[i][num-k] * dist.unconstProbs[k]
	}
	return clamp01(sum / dist.numProbs[num])
}

// unconstrainedRisk is step 11's shared posterior for every
// unconstrained cell: they are exchangeable, so each receives the same
// expected-mine-share of the chosen displayed number.
func (sw *smallWorld) unconstrainedRisk(num int, dist numDistribution) float32 {
	if dist.numProbs[num] <= 0 {
		return 0
	}
	return clamp01(dist.unconstByNum[num] / dist.numProbs[num])
}
