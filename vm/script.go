package vm

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"
)

// Script is an opaque, append-only container of opcodes and pushed
// values: callers append fragments, never read them back, and only the
// emitter's top-level caller calls Bytes().
type Script struct {
	b *txscript.ScriptBuilder
}

// NewScript returns an empty script container.
func NewScript() *Script {
	return &Script{b: txscript.NewScriptBuilder()}
}

// Op appends a single opcode.
func (s *Script) Op(op Op) *Script {
	s.b.AddOp(byte(op))
	return s
}

// Int64 appends the minimal-encoding push of an integer literal.
func (s *Script) Int64(n int64) *Script {
	s.b.AddInt64(n)
	return s
}

// Data appends a push of an opaque byte string.
func (s *Script) Data(data []byte) *Script {
	s.b.AddData(data)
	return s
}

// Append concatenates another script fragment onto this one. Nested
// containers serialize transparently as concatenation, per spec.
func (s *Script) Append(other *Script) *Script {
	if other == nil {
		return s
	}
	frag, err := other.b.Script()
	if err != nil {
		// AddOp/AddInt64/AddData never themselves fail; Script() only
		// fails if the assembled script would exceed consensus limits,
		// which a policy-compiler fragment never approaches on its own.
		panic(errors.Wrap(err, "assembling script fragment"))
	}
	s.b.AddOps(frag)
	return s
}

// Bytes serializes the script to its final byte representation.
func (s *Script) Bytes() ([]byte, error) {
	return s.b.Script()
}
