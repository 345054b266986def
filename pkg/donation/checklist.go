package donation

import (
	"regexp"
	"strings"
)

// CheckName identifies one entry of the donation form checklist.
type CheckName string

const (
	CheckNoInputClosingTags   CheckName = "no_input_closing_tags"
	CheckFiveInputElements    CheckName = "five_input_elements"
	CheckFourLabelElements    CheckName = "four_label_elements"
	CheckFirstLabelText       CheckName = "first_label_text"
	CheckFirstInputRequired   CheckName = "first_input_required"
	CheckSecondLabelText      CheckName = "second_label_text"
	CheckSecondInputRequired  CheckName = "second_input_required"
	CheckThirdLabelText       CheckName = "third_label_text"
	CheckThirdInputRequired   CheckName = "third_input_required"
	CheckFourthLabelText      CheckName = "fourth_label_text"
	CheckLabelInputAssociated CheckName = "label_input_association"
	CheckEmailInputType       CheckName = "email_input_type"
	CheckCheckboxNotRequired  CheckName = "checkbox_not_required"
	CheckSubmitNotRequired    CheckName = "submit_not_required"
)

// CheckNames lists every checklist entry in evaluation order.
var CheckNames = []CheckName{
	CheckNoInputClosingTags,
	CheckFiveInputElements,
	CheckFourLabelElements,
	CheckFirstLabelText,
	CheckFirstInputRequired,
	CheckSecondLabelText,
	CheckSecondInputRequired,
	CheckThirdLabelText,
	CheckThirdInputRequired,
	CheckFourthLabelText,
	CheckLabelInputAssociated,
	CheckEmailInputType,
	CheckCheckboxNotRequired,
	CheckSubmitNotRequired,
}

const (
	expectedInputCount = 5
	expectedLabelCount = 4
)

// Markup the reference form must contain verbatim, attribute order included.
const (
	fullNameLabel       = `<label for="fullName">Full Name:</label>`
	fullNameInput       = `<input type="text" id="fullName" name="name" required>`
	emailLabel          = `<label for="emailAddress">Email Address:</label>`
	emailInput          = `<input type="email" id="emailAddress" name="email" required>`
	donationAmountLabel = `<label for="donationAmount">Donation Amount ($):</label>`
	donationAmountInput = `<input type="number" id="donationAmount" name="amount" required>`
	subscribeLabel      = `<label for="subscribe">Subscribe</label>`
	subscribeInput      = `<input type="checkbox" id="subscribe" name="newsletter">`
)

// Checklist maps every CheckName to its outcome. Checklists returned by
// ValidateAll always carry all entries of CheckNames.
type Checklist map[CheckName]bool

// CheckResult pairs a checklist entry with its outcome.
type CheckResult struct {
	Name   CheckName `json:"name" yaml:"name"`
	Passed bool      `json:"passed" yaml:"passed"`
}

// Passed reports whether every checklist entry holds. Missing entries count
// as failures.
func (c Checklist) Passed() bool {
	for _, name := range CheckNames {
		if !c[name] {
			return false
		}
	}
	return true
}

// Failures lists failing entries in CheckNames order.
func (c Checklist) Failures() []CheckName {
	var out []CheckName
	for _, name := range CheckNames {
		if !c[name] {
			out = append(out, name)
		}
	}
	return out
}

// Results returns the checklist as an ordered slice.
func (c Checklist) Results() []CheckResult {
	out := make([]CheckResult, 0, len(CheckNames))
	for _, name := range CheckNames {
		out = append(out, CheckResult{Name: name, Passed: c[name]})
	}
	return out
}

// ValidateAll evaluates every checklist entry against html. Entries never
// short-circuit each other: the full key set is always returned.
func (v *Validator) ValidateAll(html string) Checklist {
	return Checklist{
		CheckNoInputClosingTags:   !strings.Contains(html, inputClosingTag),
		CheckFiveInputElements:    countMatches(inputTagPattern, html) == expectedInputCount,
		CheckFourLabelElements:    countMatches(labelTagPattern, html) == expectedLabelCount,
		CheckFirstLabelText:       strings.Contains(html, fullNameLabel),
		CheckFirstInputRequired:   strings.Contains(html, fullNameInput),
		CheckSecondLabelText:      strings.Contains(html, emailLabel),
		CheckSecondInputRequired:  strings.Contains(html, emailInput),
		CheckThirdLabelText:       strings.Contains(html, donationAmountLabel),
		CheckThirdInputRequired:   strings.Contains(html, donationAmountInput),
		CheckFourthLabelText:      strings.Contains(html, subscribeLabel),
		CheckLabelInputAssociated: labelsAssociated(html, v.AssociationMode()),
		CheckEmailInputType:       strings.Contains(html, emailTypeAttr),
		CheckCheckboxNotRequired:  !requiredCheckboxPattern.MatchString(html),
		CheckSubmitNotRequired:    !requiredSubmitPattern.MatchString(html),
	}
}

func countMatches(re *regexp.Regexp, html string) int {
	return len(re.FindAllStringIndex(html, -1))
}
