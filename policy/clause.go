package policy

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Clause is the closed tagged union the compiler operates over: leaves
// (signature check, pre-image check, template verify, after-time, bare
// variable, satisfied, unsatisfiable) and the binary connectives And/Or.
type Clause interface {
	// NArgs is the clause variant's declared arity, for display/metadata
	// purposes only.
	NArgs() int
	String() string

	isClause()
}

// --- nullary leaves ---

// SatisfiedClause is always true.
type SatisfiedClause struct{}

// Satisfied is the always-true clause.
func Satisfied() Clause { return SatisfiedClause{} }

func (SatisfiedClause) NArgs() int     { return 0 }
func (SatisfiedClause) String() string { return "Satisfied()" }
func (SatisfiedClause) isClause()      {}

// UnsatisfiableClause is always false.
type UnsatisfiableClause struct{}

// Unsatisfiable is the always-false clause.
func Unsatisfiable() Clause { return UnsatisfiableClause{} }

func (UnsatisfiableClause) NArgs() int     { return 0 }
func (UnsatisfiableClause) String() string { return "Unsatisfiable()" }
func (UnsatisfiableClause) isClause()      {}

// --- binary connectives ---

// AndClause requires both children to hold.
type AndClause struct {
	A, B Clause
}

func (AndClause) NArgs() int { return 2 }
func (c AndClause) String() string {
	return fmt.Sprintf("%s*%s", c.A, c.B)
}
func (AndClause) isClause() {}

// OrClause requires either child to hold.
type OrClause struct {
	A, B Clause
}

func (OrClause) NArgs() int { return 2 }
func (c OrClause) String() string {
	return fmt.Sprintf("%s+%s", c.A, c.B)
}
func (OrClause) isClause() {}

// And is the "*" combinator, closed over every clause variant.
func And(a, b Clause) Clause { return AndClause{A: a, B: b} }

// Or is the "+" combinator, closed over every clause variant.
func Or(a, b Clause) Clause { return OrClause{A: a, B: b} }

// --- unary leaves carrying one externally-supplied variable ---

// SignatureCheckClause requires a valid signature under key, implying a
// paired "signature" sub-variable derived from key at construction.
type SignatureCheckClause struct {
	Key       *Variable[btcec.PublicKey]
	Signature *Variable[[]byte]
}

// SignatureCheck builds a signature-check leaf over key, deriving its
// paired signature sub-variable.
func SignatureCheck(key *Variable[btcec.PublicKey]) Clause {
	return SignatureCheckClause{
		Key:       key,
		Signature: Derive[btcec.PublicKey, []byte](key, "signature"),
	}
}

func (SignatureCheckClause) NArgs() int { return 1 }
func (c SignatureCheckClause) String() string {
	return fmt.Sprintf("SignatureCheck(%s)", c.Key)
}
func (SignatureCheckClause) isClause() {}

// PreImageCheckClause requires a SHA-256 pre-image of hash, implying a
// paired "preimage" sub-variable derived from hash at construction.
type PreImageCheckClause struct {
	Hash     *Variable[chainhash.Hash]
	PreImage *Variable[chainhash.Hash]
}

// PreImageCheck builds a pre-image-check leaf over hash, deriving its
// paired preimage sub-variable.
func PreImageCheck(hash *Variable[chainhash.Hash]) Clause {
	return PreImageCheckClause{
		Hash:     hash,
		PreImage: Derive[chainhash.Hash, chainhash.Hash](hash, "preimage"),
	}
}

func (PreImageCheckClause) NArgs() int { return 1 }
func (c PreImageCheckClause) String() string {
	return fmt.Sprintf("PreImageCheck(%s)", c.Hash)
}
func (PreImageCheckClause) isClause() {}

// TemplateVerifyClause commits to a template hash; template MUST be bound
// to a literal value before emission.
type TemplateVerifyClause struct {
	Template *Variable[chainhash.Hash]
}

// TemplateVerify builds a template-commitment leaf.
func TemplateVerify(template *Variable[chainhash.Hash]) Clause {
	return TemplateVerifyClause{Template: template}
}

func (TemplateVerifyClause) NArgs() int { return 1 }
func (c TemplateVerifyClause) String() string {
	return fmt.Sprintf("TemplateVerify(%s)", c.Template)
}
func (TemplateVerifyClause) isClause() {}

// AfterClause requires the chain to be at or past time; time MUST be
// bound before emission.
type AfterClause struct {
	Time *Variable[TimeSpec]
}

// After builds a time-lock leaf.
func After(time *Variable[TimeSpec]) Clause {
	return AfterClause{Time: time}
}

func (AfterClause) NArgs() int { return 1 }
func (c AfterClause) String() string {
	return fmt.Sprintf("After(%s)", c.Time)
}
func (AfterClause) isClause() {}

// BareVariableClause is a witness-supplied value: if unbound at emission
// it becomes a named witness slot, if bound its literal value is pushed.
type BareVariableClause struct {
	Var *Variable[[]byte]
}

// Bare wraps a plain variable as a leaf clause.
func Bare(v *Variable[[]byte]) Clause {
	return BareVariableClause{Var: v}
}

func (BareVariableClause) NArgs() int { return 0 }
func (c BareVariableClause) String() string {
	return c.Var.String()
}
func (BareVariableClause) isClause() {}
