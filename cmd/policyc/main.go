// Command policyc is a small demonstration front end for the policy
// compiler. It compiles one of a fixed menu of example policies and
// prints the resulting script and witness templates; it does not parse
// or construct clauses from user-supplied policy text.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polydeuxes/sapio/policy"
)

var (
	verbose bool
	explain bool
)

type witnessOutput struct {
	Items    []string `json:"items"`
	Nickname string   `json:"nickname,omitempty"`
}

type compileOutput struct {
	Policy    string           `json:"policy"`
	Script    string           `json:"script_hex"`
	Witnesses []witnessOutput  `json:"witnesses"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "policyc [policy-name]",
		Short: "compile a named example spending policy to script + witnesses",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging of normalizer/emitter progress")
	root.Flags().BoolVar(&explain, "explain", false, "print the clause tree's human-readable form before compiling")

	list := &cobra.Command{
		Use:   "list",
		Short: "list the available named policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range namedPolicies {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", p.Name, p.Description)
			}
			return nil
		},
	}
	root.AddCommand(list)
	return root
}

func runCompile(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	name := args[0]
	var chosen *namedPolicy
	for i := range namedPolicies {
		if namedPolicies[i].Name == name {
			chosen = &namedPolicies[i]
			break
		}
	}
	if chosen == nil {
		return errors.Errorf("unknown policy %q (see `policyc list`)", name)
	}

	clause := chosen.Build()
	if explain {
		fmt.Fprintf(cmd.OutOrStdout(), "policy: %s\n", clause)
	}

	script, witnesses, err := policy.Compile(clause)
	if err != nil {
		return errors.Wrapf(err, "compiling policy %q", name)
	}

	scriptBytes, err := script.Bytes()
	if err != nil {
		return errors.Wrap(err, "assembling script")
	}

	out := compileOutput{Policy: name, Script: hex.EncodeToString(scriptBytes)}
	for _, w := range witnesses {
		wo := witnessOutput{Nickname: hex.EncodeToString(w.Nickname)}
		for _, item := range w.Items {
			wo.Items = append(wo.Items, item.String())
		}
		out.Witnesses = append(out.Witnesses, wo)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("policyc: compilation failed")
		os.Exit(1)
	}
}
