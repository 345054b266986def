package donation

import "regexp"

const (
	inputClosingTag = `</input>`
	emailTypeAttr   = `type="email"`
	requiredToken   = `required`
)

var (
	labelForExactPattern  = regexp.MustCompile(`<label for="([^"]+)">`)
	labelForPrefixPattern = regexp.MustCompile(`<label for="([^"]+)"`)
	inputIDPattern        = regexp.MustCompile(`<input[^>]+id="([^"]+)"`)
	requiredInputPattern  = regexp.MustCompile(`<input[^>]+(type="text"|type="email"|type="number")[^>]*>`)
	typeAttrPattern       = regexp.MustCompile(`type="([^"]+)"`)

	inputTagPattern         = regexp.MustCompile(`<input[^>]*>`)
	labelTagPattern         = regexp.MustCompile(`<label[^>]*>`)
	requiredCheckboxPattern = regexp.MustCompile(`<input type="checkbox"[^>]*required[^>]*>`)
	requiredSubmitPattern   = regexp.MustCompile(`<input type="submit"[^>]*required[^>]*>`)
)

// submatches returns the first capture group of every match in document order.
func submatches(re *regexp.Regexp, html string) []string {
	matches := re.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		out = append(out, match[1])
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
