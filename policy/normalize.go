package policy

import "github.com/pkg/errors"

// maxNormalizeDepth bounds the recursive normalizer purely as a defensive
// guardrail: the bottom-up strategy terminates by structural induction on
// any finite clause tree, so the cap trips only for a clause tree whose
// nesting (plus distribution recursion) exceeds this many levels.
const maxNormalizeDepth = 1000

// Normalize rewrites a clause into disjunctive normal form: every Or sits
// above every And. It recurses bottom-up, normalizing children first and
// then distributing And over Or once per node.
func Normalize(c Clause) (Clause, error) {
	return normalize(c, 0)
}

func normalize(c Clause, depth int) (Clause, error) {
	if depth > maxNormalizeDepth {
		return nil, errors.Wrap(ErrNormalizerDiverged, "normalize")
	}
	switch t := c.(type) {
	case AndClause:
		a, err := normalize(t.A, depth+1)
		if err != nil {
			return nil, err
		}
		b, err := normalize(t.B, depth+1)
		if err != nil {
			return nil, err
		}
		return distributeAnd(a, b, depth+1)

	case OrClause:
		a, err := normalize(t.A, depth+1)
		if err != nil {
			return nil, err
		}
		b, err := normalize(t.B, depth+1)
		if err != nil {
			return nil, err
		}
		return Or(a, b), nil

	case SatisfiedClause, UnsatisfiableClause, SignatureCheckClause,
		PreImageCheckClause, TemplateVerifyClause, AfterClause, BareVariableClause:
		return t, nil

	default:
		return nil, errors.Wrapf(ErrUnsupportedClause, "normalize: %T", c)
	}
}

// distributeAnd pushes And below Or for a single conjunction whose
// operands are already normalized (DNF) subclauses. The first case
// handles Or∧X and also Or∧Or (its recursion reaches the right-hand Or),
// the second handles X∧Or (the commuted form, kept separate rather than
// collapsed into the first); the recursion into the Or's own operands
// handles nested Ors that a single rewrite would leave un-flattened.
func distributeAnd(a, b Clause, depth int) (Clause, error) {
	if depth > maxNormalizeDepth {
		return nil, errors.Wrap(ErrNormalizerDiverged, "distributeAnd")
	}
	if ao, ok := a.(OrClause); ok {
		left, err := distributeAnd(ao.A, b, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := distributeAnd(ao.B, b, depth+1)
		if err != nil {
			return nil, err
		}
		return Or(left, right), nil
	}
	if bo, ok := b.(OrClause); ok {
		left, err := distributeAnd(bo.A, a, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := distributeAnd(bo.B, a, depth+1)
		if err != nil {
			return nil, err
		}
		return Or(left, right), nil
	}
	return And(a, b), nil
}
