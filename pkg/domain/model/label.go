package model

import (
	"strings"

	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// LabelMatcher decides whether a status label is the target label.
// The zero value of IgnoreCase keeps matching exact and case-sensitive.
type LabelMatcher struct {
	Target     types.StatusLabel
	IgnoreCase bool
}

// NewLabelMatcher creates an exact, case-sensitive matcher
func NewLabelMatcher(target types.StatusLabel) LabelMatcher {
	return LabelMatcher{Target: target}
}

// Match reports whether label is the target label
func (m LabelMatcher) Match(label types.StatusLabel) bool {
	if m.IgnoreCase {
		return strings.EqualFold(string(label), string(m.Target))
	}
	return label == m.Target
}
