package policy

import "github.com/pkg/errors"

// Sentinel error kinds for the compiler pipeline. Call sites wrap these
// with errors.Wrap/Wrapf (github.com/pkg/errors) so the underlying kind
// survives unwrap via errors.Cause while the wrapping message records
// where compilation failed.
var (
	// ErrUnsupportedClause: a clause variant reached a normalizer,
	// flattener, or emitter dispatch with no matching arm.
	ErrUnsupportedClause = errors.New("unsupported clause")

	// ErrNotNormalized: the flattener encountered an Or below an And.
	ErrNotNormalized = errors.New("clause is not in disjunctive normal form")

	// ErrUnboundRequiredValue: a TemplateVerify or After clause reached
	// emission with its variable unbound.
	ErrUnboundRequiredValue = errors.New("required variable is unbound")

	// ErrNormalizerDiverged: the recursive normalizer exceeded
	// maxNormalizeDepth.
	ErrNormalizerDiverged = errors.New("normalizer did not converge")

	// ErrInvalidTimeSpec: an After variable holds a value that is neither
	// absolute nor relative.
	ErrInvalidTimeSpec = errors.New("invalid time spec")
)
