package policy

import "github.com/pkg/errors"

// Flatten projects a clause already in disjunctive normal form into a list
// of conjunction lists — one inner list per satisfaction path. It is an
// error (ErrNotNormalized) to flatten a clause with an Or below an And;
// Normalize must run first.
func Flatten(c Clause) ([][]Clause, error) {
	switch t := c.(type) {
	case AndClause:
		if _, ok := t.A.(OrClause); ok {
			return nil, errors.Wrap(ErrNotNormalized, "flatten: Or beneath And (left)")
		}
		if _, ok := t.B.(OrClause); ok {
			return nil, errors.Wrap(ErrNotNormalized, "flatten: Or beneath And (right)")
		}
		left, err := Flatten(t.A)
		if err != nil {
			return nil, err
		}
		right, err := Flatten(t.B)
		if err != nil {
			return nil, err
		}
		if len(left) != 1 {
			return nil, errors.Wrap(ErrNotNormalized, "flatten: left operand of And is not a single conjunction")
		}
		if len(right) != 1 {
			return nil, errors.Wrap(ErrNotNormalized, "flatten: right operand of And is not a single conjunction")
		}
		conj := append(append([]Clause{}, left[0]...), right[0]...)
		return [][]Clause{conj}, nil

	case OrClause:
		left, err := Flatten(t.A)
		if err != nil {
			return nil, err
		}
		right, err := Flatten(t.B)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil

	case SatisfiedClause, UnsatisfiableClause, SignatureCheckClause,
		PreImageCheckClause, TemplateVerifyClause, AfterClause, BareVariableClause:
		return [][]Clause{{t}}, nil

	default:
		return nil, errors.Wrapf(ErrUnsupportedClause, "flatten: %T", c)
	}
}
