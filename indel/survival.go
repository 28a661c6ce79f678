package indel

import "math"

// Survival is the run-survival function exp(−rate·t/(1−prob)): the
// probability that no indel event of the given rate, with geometric
// extension probability prob, has fired by time t.
func Survival(t, rate, prob float64) float64 {
	return math.Exp(-rate * t / (1 - prob))
}

// ExpectedIndels is the expected number of indel events by time t,
// 1/Survival − 1. It grows without bound as the branch saturates.
func ExpectedIndels(t, rate, prob float64) float64 {
	return 1/Survival(t, rate, prob) - 1
}

// probablyUndetectable reports whether the branch is long enough that the
// alignment signal is statistically indistinguishable from the stationary
// distribution: the expected indel load outweighs the information carried
// by the expected run of surviving matches.
func probablyUndetectable(t float64, p Params, alphabetSize int) bool {
	if t <= 0 {
		return false
	}
	expectedMatchRunLength := 1 / (1 - math.Exp(-p.Mu*t))
	expectedInsertions := ExpectedIndels(t, p.Lambda, p.X)
	expectedDeletions := ExpectedIndels(t, p.Mu, p.Y)

	return (expectedInsertions+1)*(expectedDeletions+1) > kappa*math.Pow(float64(alphabetSize), expectedMatchRunLength)
}
