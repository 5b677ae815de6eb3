// Package vm names the opcode alphabet the policy compiler emits against
// and wraps it in an append-only script container. The opcodes themselves
// are Bitcoin Script, borrowed from btcsuite/btcd/txscript rather than
// reinvented; this package only gives them the names the compiler's
// emitter expects.
package vm

import "github.com/btcsuite/btcd/txscript"

// Op is a single opcode in the alphabet the emitter targets.
type Op byte

const (
	OP_IF    Op = Op(txscript.OP_IF)
	OP_ELSE  Op = Op(txscript.OP_ELSE)
	OP_ENDIF Op = Op(txscript.OP_ENDIF)
	OP_NOTIF Op = Op(txscript.OP_NOTIF)
	OP_IFDUP Op = Op(txscript.OP_IFDUP)
	OP_DUP   Op = Op(txscript.OP_DUP)
	OP_WITHIN Op = Op(txscript.OP_WITHIN)
	OP_VERIFY Op = Op(txscript.OP_VERIFY)
	// OP_SUB_ONE decrements the top stack item; txscript calls it OP_1SUB.
	OP_SUB_ONE Op = Op(txscript.OP_1SUB)
	OP_ZERO    Op = Op(txscript.OP_0)
	OP_SHA256  Op = Op(txscript.OP_SHA256)
	OP_EQUAL   Op = Op(txscript.OP_EQUAL)
	OP_CHECK_SIG_VERIFY        Op = Op(txscript.OP_CHECKSIGVERIFY)
	OP_CHECK_LOCK_TIME_VERIFY  Op = Op(txscript.OP_CHECKLOCKTIMEVERIFY)
	OP_CHECK_SEQUENCE_VERIFY   Op = Op(txscript.OP_CHECKSEQUENCEVERIFY)
	OP_DROP Op = Op(txscript.OP_DROP)

	// OP_CHECK_TEMPLATE_VERIFY is BIP-119, not yet assigned a mnemonic in
	// txscript. Like the sapio original this spec was distilled from, we
	// repurpose the first unused NOP flag-opcode, OP_NOP4.
	OP_CHECK_TEMPLATE_VERIFY Op = Op(txscript.OP_NOP4)
)

var names = map[Op]string{
	OP_IF:                     "OP_IF",
	OP_ELSE:                   "OP_ELSE",
	OP_ENDIF:                  "OP_ENDIF",
	OP_NOTIF:                  "OP_NOTIF",
	OP_IFDUP:                  "OP_IFDUP",
	OP_DUP:                    "OP_DUP",
	OP_WITHIN:                 "OP_WITHIN",
	OP_VERIFY:                 "OP_VERIFY",
	OP_SUB_ONE:                "OP_1SUB",
	OP_ZERO:                   "OP_0",
	OP_SHA256:                 "OP_SHA256",
	OP_EQUAL:                  "OP_EQUAL",
	OP_CHECK_SIG_VERIFY:       "OP_CHECKSIGVERIFY",
	OP_CHECK_LOCK_TIME_VERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECK_SEQUENCE_VERIFY:  "OP_CHECKSEQUENCEVERIFY",
	OP_DROP:                   "OP_DROP",
	OP_CHECK_TEMPLATE_VERIFY:  "OP_CHECKTEMPLATEVERIFY(NOP4)",
}

// Name returns the opcode's disassembly mnemonic, useful for debug output.
func (o Op) Name() string {
	if n, ok := names[o]; ok {
		return n
	}
	return "OP_UNKNOWN"
}
