// SPDX-License-Identifier: EPL-2.0

package render

import "fmt"

// WarningKind classifies a problem that was worked around during a render.
type WarningKind int

const (
	// WarnMissingAsset: the item names an asset the project does not declare.
	// The item is skipped.
	WarnMissingAsset WarningKind = iota + 1
	// WarnUnknownOp: an op type the renderer does not implement. The op is
	// skipped.
	WarnUnknownOp
	// WarnMalformedOp: an op whose parameters cannot be applied. The op is
	// skipped.
	WarnMalformedOp
	// WarnEmptyLoop: a loop over a track with no audio. The op is
	// skipped.
	WarnEmptyLoop
)

func (k WarningKind) String() string {
	switch k {
	case WarnMissingAsset:
		return "missing-asset"
	case WarnUnknownOp:
		return "unknown-op"
	case WarnMalformedOp:
		return "malformed-op"
	case WarnEmptyLoop:
		return "empty-loop"
	default:
		return fmt.Sprintf("warning(%d)", int(k))
	}
}

// Warning describes one worked-around problem. Op is the index into the
// item's ops, or -1 when the warning concerns the item itself.
type Warning struct {
	Kind    WarningKind
	Item    string
	Asset   string
	Op      int
	Message string
}

func (w Warning) String() string {
	if w.Op >= 0 {
		return fmt.Sprintf("%s: track %q op %d: %s", w.Kind, w.Item, w.Op, w.Message)
	}
	return fmt.Sprintf("%s: track %q: %s", w.Kind, w.Item, w.Message)
}
