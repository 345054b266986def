package donation_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaudit/pkg/donation"
	"github.com/goliatone/go-formaudit/pkg/testsupport"
)

func TestFix_LegacyFormGolden(t *testing.T) {
	got := donation.Fix(donation.LegacyFormHTML())

	testsupport.AssertGolden(t, filepath.Join("testdata", "legacy_fixed.golden.html"), []byte(got))
}

func TestFix_LegacyFormProperties(t *testing.T) {
	got := donation.Fix(donation.LegacyFormHTML())

	if strings.Contains(got, "</input>") {
		t.Fatalf("expected closing tags to be removed")
	}
	if n := strings.Count(got, `type="email"`); n != 1 {
		t.Fatalf(`expected one type="email", got %d`, n)
	}
	if !strings.Contains(got, `<label for="donationAmount">Donation Amount ($):</label>`) {
		t.Fatalf("expected literal dollar sign to survive the replacement:\n%s", got)
	}
	if diagnostics := donation.ValidateStructure(got); len(diagnostics) != 0 {
		t.Fatalf("expected fixed form to be structurally clean, got %q", diagnostics)
	}
}

func TestFix_LegacyFormChecklist(t *testing.T) {
	checklist := donation.ValidateAll(donation.Fix(donation.LegacyFormHTML()))

	want := []donation.CheckName{
		donation.CheckFourLabelElements,
		donation.CheckSecondLabelText,
	}
	if diff := cmp.Diff(want, checklist.Failures()); diff != "" {
		t.Fatalf("failures mismatch (-want +got):\n%s", diff)
	}
}

func TestFix_Idempotent(t *testing.T) {
	once := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "legacy_fixed.golden.html"))
	twice, report := donation.FixWithReport(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second fix changed the document (-once +twice):\n%s", diff)
	}
	if report.Changed() {
		t.Fatalf("expected no rules to apply, got %v", report.Applied)
	}
}

func TestFixWithReport_ListsAppliedRules(t *testing.T) {
	_, report := donation.FixWithReport(donation.LegacyFormHTML())

	want := []string{
		"remove-input-closing-tags",
		"email-input-type",
		"full-name-label",
		"donation-amount-label",
		"subscribe-label",
	}
	if diff := cmp.Diff(want, report.Applied); diff != "" {
		t.Fatalf("applied rules mismatch (-want +got):\n%s", diff)
	}
}

func TestFix_CorrectedFormUnchanged(t *testing.T) {
	html := donation.CorrectedHTML()
	if got := donation.Fix(html); got != html {
		t.Fatalf("expected reference document to be left untouched")
	}
}

func TestFix_RulesMatchCaseInsensitively(t *testing.T) {
	html := "FULL NAME:\n<INPUT TYPE=\"TEXT\" NAME=\"NAME\">"

	got := donation.Fix(html)

	want := "<label for=\"fullName\">Full Name:</label>\n    <input type=\"text\" id=\"fullName\" name=\"name\" required>"
	if got != want {
		t.Fatalf("unexpected rewrite\nwant: %q\n got: %q", want, got)
	}
}

func TestFix_EmailRuleIsCaseSensitive(t *testing.T) {
	html := `<INPUT TYPE="TEXT" NAME="EMAIL">`
	if got := donation.Fix(html); got != html {
		t.Fatalf("expected email rule to ignore differently cased markup, got %q", got)
	}
}

func TestFix_EmptyInput(t *testing.T) {
	if got := donation.Fix(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestFixRules_ReturnsCopy(t *testing.T) {
	rules := donation.FixRules()
	if len(rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(rules))
	}
	rules[0].Replacement = "mutated"

	if got := donation.Fix("<input type=\"submit\"></input>"); got != "<input type=\"submit\">" {
		t.Fatalf("mutating the returned rules leaked into Fix: %q", got)
	}
}
