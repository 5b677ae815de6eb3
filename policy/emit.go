package policy

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"

	"github.com/polydeuxes/sapio/vm"
)

// emitLeaf is the dispatch on clause variant for a single leaf; it
// threads the branch's WitnessTemplate and returns the script fragment
// for that leaf.
func emitLeaf(c Clause, w *WitnessTemplate) (*vm.Script, error) {
	switch t := c.(type) {

	case SignatureCheckClause:
		s := vm.NewScript()
		s.Append(emitByteVar(t.Signature, w))
		s.Append(emitKeyVar(t.Key, w))
		s.Op(vm.OP_CHECK_SIG_VERIFY)
		return s, nil

	case PreImageCheckClause:
		s := vm.NewScript()
		s.Append(emitHashVar(t.PreImage, w))
		s.Op(vm.OP_SHA256)
		s.Append(emitHashVar(t.Hash, w))
		s.Op(vm.OP_EQUAL)
		return s, nil

	case TemplateVerifyClause:
		value, ok := t.Template.Value()
		if !ok {
			return nil, errors.Wrapf(ErrUnboundRequiredValue, "template-verify variable %q is unbound", t.Template.Name())
		}
		s := vm.NewScript()
		s.Data(value[:])
		s.Op(vm.OP_CHECK_TEMPLATE_VERIFY)
		s.Op(vm.OP_DROP)
		w.SetNickname(value[:])
		return s, nil

	case AfterClause:
		value, ok := t.Time.Value()
		if !ok {
			return nil, errors.Wrapf(ErrUnboundRequiredValue, "after-time variable %q is unbound", t.Time.Name())
		}
		s := vm.NewScript()
		switch tv := value.(type) {
		case AbsoluteTime:
			s.Int64(tv.Value)
			s.Op(vm.OP_CHECK_LOCK_TIME_VERIFY)
		case RelativeTime:
			s.Int64(tv.Value)
			s.Op(vm.OP_CHECK_SEQUENCE_VERIFY)
		default:
			return nil, errors.Wrapf(ErrInvalidTimeSpec, "after-time variable %q holds %T", t.Time.Name(), value)
		}
		s.Op(vm.OP_DROP)
		return s, nil

	case BareVariableClause:
		return emitByteVar(t.Var, w), nil

	case SatisfiedClause, UnsatisfiableClause:
		// No emission exists for these in the original either (no
		// _compile.register case): they are algebra-only identities that
		// normalization/short-circuiting is expected to have already
		// eliminated before a conjunction reaches emission.
		return nil, errors.Wrapf(ErrUnsupportedClause, "emit: %T has no emission form", c)

	default:
		return nil, errors.Wrapf(ErrUnsupportedClause, "emit: %T", c)
	}
}

// emitKeyVar pushes a bound public key's serialized bytes, or declares an
// unbound key as a named witness slot.
func emitKeyVar(v *Variable[btcec.PublicKey], w *WitnessTemplate) *vm.Script {
	s := vm.NewScript()
	if value, ok := v.Value(); ok {
		s.Data(value.SerializeCompressed())
		return s
	}
	w.AddVariable(v.Name())
	return s
}

// emitHashVar pushes a bound hash's bytes, or declares an unbound hash as
// a named witness slot.
func emitHashVar(v *Variable[chainhash.Hash], w *WitnessTemplate) *vm.Script {
	s := vm.NewScript()
	if value, ok := v.Value(); ok {
		s.Data(value[:])
		return s
	}
	w.AddVariable(v.Name())
	return s
}

// emitByteVar pushes a bound opaque byte value, or declares an unbound
// variable as a named witness slot. Because witness items are prepended
// as they're discovered during this left-to-right recursive emission, the
// final sequence reflects the stack-top-first order the verifier needs.
func emitByteVar(v *Variable[[]byte], w *WitnessTemplate) *vm.Script {
	s := vm.NewScript()
	if value, ok := v.Value(); ok {
		s.Data(value)
		return s
	}
	w.AddVariable(v.Name())
	return s
}
