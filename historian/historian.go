package historian

import (
	"encoding/json"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylik/indel"
	"github.com/katalvlaran/phylik/subst"
)

var (
	// ErrNoAlphabet indicates a model file without an alphabet, or an
	// alphabet with fewer than 2 symbols or repeated symbols.
	ErrNoAlphabet = errors.New("historian: alphabet must list at least 2 distinct symbols")
	// ErrEmptyMixture indicates an explicit mixture array with no entries.
	ErrEmptyMixture = errors.New("historian: mixture must have at least one component")
)

// component mirrors one substitution category of the JSON shape.
type component struct {
	Subrate  map[string]map[string]float64 `json:"subrate"`
	Rootprob map[string]float64            `json:"rootprob"`
}

// document mirrors the full Historian JSON object. Indel fields default to
// 0 when absent, matching the format's conventions.
type document struct {
	Alphabet   string                        `json:"alphabet"`
	Subrate    map[string]map[string]float64 `json:"subrate,omitempty"`
	Rootprob   map[string]float64            `json:"rootprob,omitempty"`
	Mixture    []component                   `json:"mixture,omitempty"`
	Insrate    float64                       `json:"insrate"`
	Delrate    float64                       `json:"delrate"`
	Insextprob float64                       `json:"insextprob"`
	Delextprob float64                       `json:"delextprob"`
}

// Parse decodes a Historian model file into an alphabet, a substitution
// mixture (a single-component mixture when no "mixture" array is present)
// and the indel parameters. Rate matrices are normalized into generators
// and root frequencies onto the simplex during parsing.
func Parse(data []byte) (string, subst.Mixture, indel.Params, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, indel.Params{}, fmt.Errorf("historian: decoding model file: %w", err)
	}

	symbols := []rune(doc.Alphabet)
	if err := validateAlphabet(symbols); err != nil {
		return "", nil, indel.Params{}, err
	}

	var mix subst.Mixture
	if doc.Mixture != nil {
		if len(doc.Mixture) == 0 {
			return "", nil, indel.Params{}, ErrEmptyMixture
		}
		for _, comp := range doc.Mixture {
			mix = append(mix, parseComponent(symbols, comp))
		}
	} else {
		mix = subst.Mixture{parseComponent(symbols, component{
			Subrate:  doc.Subrate,
			Rootprob: doc.Rootprob,
		})}
	}

	ip := indel.Params{
		Lambda: doc.Insrate,
		Mu:     doc.Delrate,
		X:      doc.Insextprob,
		Y:      doc.Delextprob,
	}

	return doc.Alphabet, mix, ip, nil
}

// parseComponent fills an A×A rate matrix and root vector from the symbol
// maps — missing entries default to 0 — and normalizes the pair.
func parseComponent(symbols []rune, comp component) subst.Model {
	n := len(symbols)
	raw := mat.NewDense(n, n, nil)
	root := make([]float64, n)
	for i, si := range symbols {
		row := comp.Subrate[string(si)]
		for j, sj := range symbols {
			raw.Set(i, j, row[string(sj)])
		}
		root[i] = comp.Rootprob[string(si)]
	}

	return subst.Normalize(subst.Model{Rate: raw, RootProb: root})
}

// Serialize renders the alphabet, mixture and indel parameters back into
// the Historian JSON shape: top-level subrate/rootprob for one component,
// a "mixture" array otherwise. Diagonal rate entries are implied and
// therefore omitted.
func Serialize(alphabet string, mix subst.Mixture, ip indel.Params) ([]byte, error) {
	symbols := []rune(alphabet)
	if err := validateAlphabet(symbols); err != nil {
		return nil, err
	}
	if err := mix.Validate(); err != nil {
		return nil, err
	}
	for _, m := range mix {
		if m.AlphabetSize() != len(symbols) {
			return nil, subst.ErrRootProbShape
		}
	}

	doc := document{
		Alphabet:   alphabet,
		Insrate:    ip.Lambda,
		Delrate:    ip.Mu,
		Insextprob: ip.X,
		Delextprob: ip.Y,
	}
	if len(mix) == 1 {
		comp := serializeComponent(symbols, mix[0])
		doc.Subrate, doc.Rootprob = comp.Subrate, comp.Rootprob
	} else {
		for _, m := range mix {
			doc.Mixture = append(doc.Mixture, serializeComponent(symbols, m))
		}
	}

	return json.Marshal(doc)
}

// serializeComponent maps one model back onto symbol-keyed rate and
// frequency maps.
func serializeComponent(symbols []rune, m subst.Model) component {
	sub := make(map[string]map[string]float64, len(symbols))
	root := make(map[string]float64, len(symbols))
	for i, si := range symbols {
		row := make(map[string]float64, len(symbols)-1)
		for j, sj := range symbols {
			if i != j {
				row[string(sj)] = m.Rate.At(i, j)
			}
		}
		sub[string(si)] = row
		root[string(si)] = m.RootProb[i]
	}

	return component{Subrate: sub, Rootprob: root}
}

// validateAlphabet rejects alphabets below 2 symbols or with duplicates.
func validateAlphabet(symbols []rune) error {
	if len(symbols) < 2 {
		return ErrNoAlphabet
	}
	seen := make(map[rune]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			return ErrNoAlphabet
		}
		seen[s] = struct{}{}
	}

	return nil
}
