package policy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func leafNames(conjunctions [][]Clause) [][]string {
	out := make([][]string, len(conjunctions))
	for i, conj := range conjunctions {
		for _, leaf := range conj {
			out[i] = append(out[i], leaf.String())
		}
	}
	return out
}

func TestFlattenAndConcatenatesConjuncts(t *testing.T) {
	a, b := sig("a"), sig("b")
	conj, err := Flatten(And(a, b))
	require.NoError(t, err)
	require.Len(t, conj, 1)
	require.Len(t, conj[0], 2)
}

func TestFlattenOrConcatenatesBranches(t *testing.T) {
	a, b, d := sig("a"), sig("b"), sig("d")
	n, err := Normalize(Or(Or(a, b), d))
	require.NoError(t, err)
	conjunctions, err := Flatten(n)
	require.NoError(t, err)

	got := leafNames(conjunctions)
	want := [][]string{{a.String()}, {b.String()}, {d.String()}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flatten(normalize(or)) mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenDistributesFourBranches(t *testing.T) {
	// (A+B)*(D+E) normalizes to four conjunctions.
	a, b, d, e := sig("a"), sig("b"), hashLeaf("d"), hashLeaf("e")
	n, err := Normalize(And(Or(a, b), Or(d, e)))
	require.NoError(t, err)
	conjunctions, err := Flatten(n)
	require.NoError(t, err)
	require.Len(t, conjunctions, 4)
	for _, conj := range conjunctions {
		require.Len(t, conj, 2)
	}
}

func TestFlattenLeafIsSingletonConjunction(t *testing.T) {
	conj, err := Flatten(Satisfied())
	require.NoError(t, err)
	require.Equal(t, [][]Clause{{Satisfied()}}, conj)
}
