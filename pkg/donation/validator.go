package donation

// Option customises a Validator.
type Option func(*Validator)

// WithAssociationMode selects how the checklist evaluates label/input
// associations. Unknown modes are ignored and the validator keeps its current
// mode.
func WithAssociationMode(mode AssociationMode) Option {
	return func(v *Validator) {
		if !mode.Valid() {
			return
		}
		v.association = mode
	}
}

// Validator runs the donation form checks. It holds no per-document state, so
// a single instance can be shared freely.
type Validator struct {
	association AssociationMode
}

// New constructs a Validator using AssociationStrict unless overridden.
func New(options ...Option) *Validator {
	v := &Validator{
		association: AssociationStrict,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// AssociationMode reports the association semantics used by ValidateAll.
func (v *Validator) AssociationMode() AssociationMode {
	if v == nil {
		return AssociationStrict
	}
	return v.association
}

var defaultValidator = New()

// ValidateStructure runs the structural checks with the default validator.
func ValidateStructure(html string) []string {
	return defaultValidator.ValidateStructure(html)
}

// Diagnose runs the structural checks with the default validator.
func Diagnose(html string) []Diagnostic {
	return defaultValidator.Diagnose(html)
}

// ValidateAll evaluates the checklist with the default validator.
func ValidateAll(html string) Checklist {
	return defaultValidator.ValidateAll(html)
}

// Fix applies the fix rules with the default validator.
func Fix(html string) string {
	return defaultValidator.Fix(html)
}

// FixWithReport applies the fix rules with the default validator.
func FixWithReport(html string) (string, FixReport) {
	return defaultValidator.FixWithReport(html)
}
