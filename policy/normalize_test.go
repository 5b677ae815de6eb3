package policy

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sig(name string) Clause {
	return SignatureCheck(NewVariable[btcec.PublicKey](name))
}

func hashLeaf(name string) Clause {
	return PreImageCheck(NewVariable[chainhash.Hash](name))
}

func sampleClauses(t *testing.T) []Clause {
	t.Helper()
	a := sig("a")
	b := sig("b")
	d := hashLeaf("d")
	e := hashLeaf("e")
	f := sig("f")
	return []Clause{
		a,
		And(a, b),
		Or(a, b),
		And(Or(a, b), Or(d, e)),
		Or(And(a, b), d),
		And(a, Or(b, d)),
		Or(Or(a, b), Or(d, e)),
		And(And(a, b), Or(d, e)),
		Or(And(Or(a, b), d), And(f, Or(e, a))),
	}
}

// TestNormalizationIdempotence checks Normalize is idempotent: running it
// twice produces the same clause as running it once.
func TestNormalizationIdempotence(t *testing.T) {
	for i, c := range sampleClauses(t) {
		once, err := Normalize(c)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once.String(), twice.String(), "case %d: normalize(normalize(C)) != normalize(C)", i)
	}
}

// TestDNFShape checks that the flattened form of normalize(C) is a
// non-empty list of non-empty lists of leaves only.
func TestDNFShape(t *testing.T) {
	for i, c := range sampleClauses(t) {
		n, err := Normalize(c)
		require.NoError(t, err)
		conjunctions, err := Flatten(n)
		require.NoError(t, err)
		require.NotEmpty(t, conjunctions, "case %d", i)
		for _, conj := range conjunctions {
			require.NotEmpty(t, conj, "case %d", i)
			for _, leaf := range conj {
				_, isAnd := leaf.(AndClause)
				_, isOr := leaf.(OrClause)
				assert.False(t, isAnd, "case %d: conjunction contains an And", i)
				assert.False(t, isOr, "case %d: conjunction contains an Or", i)
			}
		}
	}
}

// TestSemanticPreservation checks, for one truth assignment (Satisfied
// leaves true, Unsatisfiable leaves false), that C and
// flatten(normalize(C)) agree when interpreted as a disjunction of
// conjunctions.
func TestSemanticPreservation(t *testing.T) {
	a, b, d, e := Satisfied(), Unsatisfiable(), Satisfied(), Unsatisfiable()
	trees := []Clause{
		And(Or(a, b), Or(d, e)),
		Or(And(a, b), d),
		And(a, Or(b, d)),
	}
	truth := map[string]bool{
		"Satisfied()":     true,
		"Unsatisfiable()": false,
	}
	for i, c := range trees {
		n, err := Normalize(c)
		require.NoError(t, err)
		conjunctions, err := Flatten(n)
		require.NoError(t, err)

		want := evalClause(c, truth)
		got := false
		for _, conj := range conjunctions {
			clauseTrue := true
			for _, leaf := range conj {
				if !truth[leaf.String()] {
					clauseTrue = false
					break
				}
			}
			if clauseTrue {
				got = true
				break
			}
		}
		assert.Equal(t, want, got, "case %d", i)
	}
}

func evalClause(c Clause, truth map[string]bool) bool {
	switch t := c.(type) {
	case AndClause:
		return evalClause(t.A, truth) && evalClause(t.B, truth)
	case OrClause:
		return evalClause(t.A, truth) || evalClause(t.B, truth)
	default:
		return truth[c.String()]
	}
}

func TestFlattenRejectsUnnormalizedClause(t *testing.T) {
	a, b, d := sig("a"), sig("b"), sig("d")
	unnormalized := And(Or(a, b), d)
	_, err := Flatten(unnormalized)
	assert.ErrorIs(t, err, ErrNotNormalized)
}

func TestNormalizeRejectsUnknownClause(t *testing.T) {
	_, err := normalize(unknownClause{}, 0)
	assert.ErrorIs(t, err, ErrUnsupportedClause)
}

type unknownClause struct{}

func (unknownClause) NArgs() int     { return 0 }
func (unknownClause) String() string { return "unknown" }
func (unknownClause) isClause()      {}
