package donation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaudit/pkg/donation"
)

func TestValidateAll_LegacyForm(t *testing.T) {
	want := donation.Checklist{
		donation.CheckNoInputClosingTags:   false,
		donation.CheckFiveInputElements:    true,
		donation.CheckFourLabelElements:    false,
		donation.CheckFirstLabelText:       false,
		donation.CheckFirstInputRequired:   false,
		donation.CheckSecondLabelText:      false,
		donation.CheckSecondInputRequired:  false,
		donation.CheckThirdLabelText:       false,
		donation.CheckThirdInputRequired:   false,
		donation.CheckFourthLabelText:      false,
		donation.CheckLabelInputAssociated: true,
		donation.CheckEmailInputType:       false,
		donation.CheckCheckboxNotRequired:  true,
		donation.CheckSubmitNotRequired:    true,
	}

	for _, mode := range donation.AssociationModes {
		t.Run(string(mode), func(t *testing.T) {
			validator := donation.New(donation.WithAssociationMode(mode))
			got := validator.ValidateAll(donation.LegacyFormHTML())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("checklist mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateAll_CorrectedFormPassesEverything(t *testing.T) {
	for _, mode := range donation.AssociationModes {
		t.Run(string(mode), func(t *testing.T) {
			got := donation.New(donation.WithAssociationMode(mode)).ValidateAll(donation.CorrectedHTML())
			if !got.Passed() {
				t.Fatalf("expected every check to pass, failures: %v", got.Failures())
			}
			if len(got) != len(donation.CheckNames) {
				t.Fatalf("expected %d entries, got %d", len(donation.CheckNames), len(got))
			}
		})
	}
}

func TestValidateAll_AlwaysReturnsFullKeySet(t *testing.T) {
	for _, input := range []string{"", "plain text", "<form><input></form>"} {
		got := donation.ValidateAll(input)
		for _, name := range donation.CheckNames {
			if _, ok := got[name]; !ok {
				t.Fatalf("input %q: missing check %q", input, name)
			}
		}
		if len(got) != len(donation.CheckNames) {
			t.Fatalf("input %q: expected %d entries, got %d", input, len(donation.CheckNames), len(got))
		}
	}
}

func TestValidateAll_AssociationModesDiverge(t *testing.T) {
	html := `<label for="missing">Missing</label>
<label for="present">Present</label>
<input type="text" id="present" name="present" required>`

	strict := donation.New(donation.WithAssociationMode(donation.AssociationStrict)).ValidateAll(html)
	if strict[donation.CheckLabelInputAssociated] {
		t.Fatalf("strict mode should fail when any label lacks an input")
	}

	lastLabel := donation.New(donation.WithAssociationMode(donation.AssociationLastLabel)).ValidateAll(html)
	if !lastLabel[donation.CheckLabelInputAssociated] {
		t.Fatalf("last-label mode should only inspect the final label")
	}
}

func TestValidateAll_AssociationModesAgreeWhenLastLabelMissing(t *testing.T) {
	html := `<label for="present">Present</label>
<label for="missing">Missing</label>
<input type="text" id="present" name="present" required>`

	for _, mode := range donation.AssociationModes {
		got := donation.New(donation.WithAssociationMode(mode)).ValidateAll(html)
		if got[donation.CheckLabelInputAssociated] {
			t.Fatalf("%s: expected association to fail", mode)
		}
	}
}

func TestValidateAll_AssociationInspectsLabelsWithExtraAttributes(t *testing.T) {
	html := `<label for="ghost" class="field">Ghost</label><input type="text" id="real">`

	if donation.ValidateAll(html)[donation.CheckLabelInputAssociated] {
		t.Fatalf("expected association to inspect labels carrying extra attributes")
	}
}

func TestValidateAll_RequiredCheckboxAndSubmit(t *testing.T) {
	html := `<input type="checkbox" id="subscribe" name="newsletter" required>
<input type="submit" value="Send" required>`

	got := donation.ValidateAll(html)
	if got[donation.CheckCheckboxNotRequired] {
		t.Fatalf("expected checkbox_not_required to fail")
	}
	if got[donation.CheckSubmitNotRequired] {
		t.Fatalf("expected submit_not_required to fail")
	}
}

func TestChecklist_ResultsFollowCanonicalOrder(t *testing.T) {
	results := donation.ValidateAll(donation.CorrectedHTML()).Results()

	got := make([]donation.CheckName, 0, len(results))
	for _, result := range results {
		got = append(got, result.Name)
		if !result.Passed {
			t.Fatalf("expected %s to pass", result.Name)
		}
	}
	if diff := cmp.Diff(donation.CheckNames, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestChecklist_MissingEntriesFail(t *testing.T) {
	partial := donation.Checklist{donation.CheckEmailInputType: true}

	if partial.Passed() {
		t.Fatalf("partial checklist must not pass")
	}
	if got := len(partial.Failures()); got != len(donation.CheckNames)-1 {
		t.Fatalf("expected %d failures, got %d", len(donation.CheckNames)-1, got)
	}
}

func TestParseAssociationMode(t *testing.T) {
	cases := map[string]donation.AssociationMode{
		"":            donation.AssociationStrict,
		"strict":      donation.AssociationStrict,
		" Last-Label": donation.AssociationLastLabel,
	}
	for raw, want := range cases {
		got, err := donation.ParseAssociationMode(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %q got %q", raw, want, got)
		}
	}

	if _, err := donation.ParseAssociationMode("loose"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestWithAssociationMode_IgnoresUnknownMode(t *testing.T) {
	validator := donation.New(donation.WithAssociationMode("loose"))
	if got := validator.AssociationMode(); got != donation.AssociationStrict {
		t.Fatalf("expected strict mode, got %q", got)
	}
}
