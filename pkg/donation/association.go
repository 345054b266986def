package donation

import (
	"fmt"
	"strings"
)

// AssociationMode controls how the label_input_association checklist entry
// is computed.
type AssociationMode string

const (
	// AssociationStrict requires every label `for` value to match an input id.
	AssociationStrict AssociationMode = "strict"
	// AssociationLastLabel only tests the last label `for` value in the
	// document. It reproduces the verdicts of the legacy checker, which
	// diverge from strict mode on documents with several labels.
	AssociationLastLabel AssociationMode = "last-label"
)

// AssociationModes lists the supported modes.
var AssociationModes = []AssociationMode{AssociationStrict, AssociationLastLabel}

// Valid reports whether m is a supported mode.
func (m AssociationMode) Valid() bool {
	switch m {
	case AssociationStrict, AssociationLastLabel:
		return true
	default:
		return false
	}
}

func (m AssociationMode) String() string {
	return string(m)
}

// ParseAssociationMode converts user input into an AssociationMode. The empty
// string selects AssociationStrict.
func ParseAssociationMode(raw string) (AssociationMode, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return AssociationStrict, nil
	}
	mode := AssociationMode(trimmed)
	if !mode.Valid() {
		return "", fmt.Errorf("donation: unknown association mode %q", raw)
	}
	return mode, nil
}

// labelsAssociated evaluates the association predicate. Label `for` values
// are taken from `<label for="X"` without requiring the tag to close right
// after the attribute.
func labelsAssociated(html string, mode AssociationMode) bool {
	labelFors := submatches(labelForPrefixPattern, html)
	if len(labelFors) == 0 {
		return true
	}
	inputIDs := toSet(submatches(inputIDPattern, html))

	if mode == AssociationLastLabel {
		_, ok := inputIDs[labelFors[len(labelFors)-1]]
		return ok
	}

	for _, forValue := range labelFors {
		if _, ok := inputIDs[forValue]; !ok {
			return false
		}
	}
	return true
}
