// Package historian reads and writes Historian-format JSON model files:
// an alphabet, substitution rates and root frequencies (optionally as a
// mixture of categories), and the four indel parameters.
//
// 🚀 What is the Historian format?
//
//	A JSON object of the shape
//
//	  {
//	    "alphabet": "acgt",
//	    "subrate":  {"a": {"c": 0.3, "g": 0.4, "t": 0.3}, ...},
//	    "rootprob": {"a": 0.25, "c": 0.25, "g": 0.25, "t": 0.25},
//	    "insrate": 0.01, "delrate": 0.01,
//	    "insextprob": 0.4, "delextprob": 0.4
//	  }
//
//	Missing subrate/rootprob entries default to 0; diagonals are implied
//	(negated row sums); root frequencies are renormalized to sum to 1; a
//	"mixture" array of {subrate, rootprob} objects replaces the top-level
//	pair when several categories are present; absent indel fields are 0.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/historian"
//
//	alphabet, mix, ip, err := historian.Parse(data)
//	out, err := historian.Serialize(alphabet, mix, ip)
//
// Parsing and serialization round-trip: Serialize reproduces the shape
// Parse consumes, with floating-point values rendered as plain numbers.
package historian
