package policy

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/polydeuxes/sapio/vm"
)

// Compile turns a policy clause into a locking script and the parallel
// vector of witness templates describing how to satisfy each branch:
// normalize, flatten, emit one branch per conjunction, and wrap with the
// branch-selector strategy matching the branch count.
func Compile(c Clause) (*vm.Script, []*WitnessTemplate, error) {
	normalized, err := Normalize(c)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compile: normalizing")
	}

	conjunctions, err := Flatten(normalized)
	if err != nil {
		return nil, nil, errors.Wrap(err, "compile: flattening")
	}
	if len(conjunctions) == 0 {
		return nil, nil, errors.Wrap(ErrNotNormalized, "compile: flattener produced no branches")
	}

	logrus.WithField("branches", len(conjunctions)).Debug("policy: compiling")

	witnesses := make([]*WitnessTemplate, len(conjunctions))
	for i := range conjunctions {
		witnesses[i] = NewWitnessTemplate()
	}

	branches := make([]*vm.Script, len(conjunctions))
	for i, conj := range conjunctions {
		s := vm.NewScript()
		for _, leaf := range conj {
			frag, err := emitLeaf(leaf, witnesses[i])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "compile: emitting branch %d", i)
			}
			s.Append(frag)
		}
		branches[i] = s
		logrus.WithFields(logrus.Fields{"branch": i, "leaves": len(conj)}).Debug("policy: compiled branch")
	}

	script := selectBranches(branches, witnesses)
	return script, witnesses, nil
}

// selectBranches wraps the per-branch scripts with the dispatch strategy
// matching the branch count. The 1- and 2-case forms avoid the
// selector-pushing overhead a generic N-case wrapper would need; the
// N>=3 form is a linear decrement ladder each branch conditionally
// consumes.
func selectBranches(branches []*vm.Script, witnesses []*WitnessTemplate) *vm.Script {
	n := len(branches)
	switch {
	case n == 1:
		s := vm.NewScript()
		s.Append(branches[0])
		s.Int64(1)
		return s

	case n == 2:
		witnesses[0].AddSelector(1)
		witnesses[1].AddSelector(0)
		s := vm.NewScript()
		s.Op(vm.OP_IF)
		s.Append(branches[0])
		s.Op(vm.OP_ELSE)
		s.Append(branches[1])
		s.Op(vm.OP_ENDIF)
		s.Int64(1)
		return s

	default:
		s := vm.NewScript()
		s.Op(vm.OP_DUP)
		s.Int64(0)
		s.Int64(int64(n))
		s.Op(vm.OP_WITHIN)
		s.Op(vm.OP_VERIFY)
		for i, branch := range branches {
			witnesses[i].AddSelector(i + 1)
			s.Op(vm.OP_SUB_ONE)
			s.Op(vm.OP_IFDUP)
			s.Op(vm.OP_NOTIF)
			s.Append(branch)
			s.Int64(0)
			s.Op(vm.OP_ENDIF)
		}
		return s
	}
}
