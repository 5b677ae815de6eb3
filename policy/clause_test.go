package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseNArgs(t *testing.T) {
	key := NewVariable[keyStub]("k")
	cases := []struct {
		name string
		c    Clause
		want int
	}{
		{"satisfied", Satisfied(), 0},
		{"unsatisfiable", Unsatisfiable(), 0},
		{"and", And(Satisfied(), Unsatisfiable()), 2},
		{"or", Or(Satisfied(), Unsatisfiable()), 2},
		{"after", After(NewVariable[TimeSpec]("t")), 1},
		{"bare", Bare(NewVariable[[]byte]("v")), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.NArgs())
		})
	}
	_ = key
}

func TestAndOrCombinatorsAreClosed(t *testing.T) {
	// and/or must be closed over every clause variant, including
	// Satisfied, Unsatisfiable, and bare Variable.
	leaf := Bare(NewVariable[[]byte]("x"))
	combos := []Clause{
		And(Satisfied(), leaf),
		Or(Unsatisfiable(), leaf),
		And(leaf, Or(Satisfied(), Unsatisfiable())),
	}
	for _, c := range combos {
		assert.NotNil(t, c)
		assert.NotEmpty(t, c.String())
	}
}

func TestDeriveProducesStableDecoratedNames(t *testing.T) {
	parent := NewVariable[int]("root")
	a := Derive[int, string](parent, "left")
	b := Derive[int, string](parent, "right")
	assert.Equal(t, "root_0_left", a.Name())
	assert.Equal(t, "root_1_right", b.Name())
}

func TestVariableBindAtMostOnce(t *testing.T) {
	v := NewVariable[int]("v")
	assert.NoError(t, v.Bind(42))
	val, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	err := v.Bind(7)
	assert.Error(t, err)
}

type keyStub struct{}
