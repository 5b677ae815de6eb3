package main

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/polydeuxes/sapio/policy"
)

// namedPolicy builds one of a handful of canonical policies. This is a
// fixed menu of programmatically constructed clause trees, not a parser
// for user-supplied policy text: this CLI never turns argv/stdin text
// into a Clause.
type namedPolicy struct {
	Name        string
	Description string
	Build       func() policy.Clause
}

func unboundKey(name string) *policy.Variable[btcec.PublicKey] {
	return policy.NewVariable[btcec.PublicKey](name)
}

func unboundHash(name string) *policy.Variable[chainhash.Hash] {
	return policy.NewVariable[chainhash.Hash](name)
}

var namedPolicies = []namedPolicy{
	{
		Name:        "single-sig",
		Description: "S1: a single signature check",
		Build: func() policy.Clause {
			return policy.SignatureCheck(unboundKey("alice_key"))
		},
	},
	{
		Name:        "or-of-sigs",
		Description: "S2: either of two signatures",
		Build: func() policy.Clause {
			return policy.Or(
				policy.SignatureCheck(unboundKey("alice_key")),
				policy.SignatureCheck(unboundKey("bob_key")),
			)
		},
	},
	{
		Name:        "sig-and-hashlock",
		Description: "S3: a signature and a hash pre-image",
		Build: func() policy.Clause {
			return policy.And(
				policy.SignatureCheck(unboundKey("alice_key")),
				policy.PreImageCheck(unboundHash("escrow_hash")),
			)
		},
	},
	{
		Name:        "distributed-or",
		Description: "S4: (A+B)*(D+E), normalizing to four branches",
		Build: func() policy.Clause {
			a := policy.SignatureCheck(unboundKey("a_key"))
			b := policy.SignatureCheck(unboundKey("b_key"))
			d := policy.PreImageCheck(unboundHash("d_hash"))
			e := policy.PreImageCheck(unboundHash("e_hash"))
			return policy.And(policy.Or(a, b), policy.Or(d, e))
		},
	},
	{
		Name:        "template-verify",
		Description: "S5: a bound template commitment",
		Build: func() policy.Clause {
			h := sha256.Sum256([]byte("policyc-example-template"))
			tmpl := policy.NewBoundVariable[chainhash.Hash]("tmpl", chainhash.Hash(h))
			return policy.TemplateVerify(tmpl)
		},
	},
	{
		Name:        "timelock",
		Description: "S6: a two-week relative time lock",
		Build: func() policy.Clause {
			return policy.After(policy.Weeks(2))
		},
	},
}
