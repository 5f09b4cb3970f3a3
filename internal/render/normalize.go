package render

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"cv-builder/internal/model"
)

// Text cleanup and ordering policies applied uniformly by the section
// builders. All of them degrade silently: blank input stays blank,
// unparseable dates sort as the oldest possible value.

func upper(s string) string { return strings.ToUpper(s) }

// titleCase capitalizes each whitespace-separated word and lowers the
// rest, mirroring how recruiter-facing names are displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// normalizeSentence strips any run of trailing periods and appends
// exactly one. Blank input stays blank.
func normalizeSentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimRight(s, ".") + "."
}

// normalizeSentences applies normalizeSentence and drops blanks.
func normalizeSentences(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if n := normalizeSentence(it); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// cleanStrings drops blank and whitespace-only entries.
func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, strings.TrimSpace(it))
		}
	}
	return out
}

// joinNonEmpty joins the non-blank parts with sep, leaving no dangling
// separators.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

// hasContent reports whether any field carries non-whitespace text.
func hasContent(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return true
		}
	}
	return false
}

// parseDate parses an ISO date, returning the zero time when the value
// is blank or malformed so it sinks to the bottom of a most-recent-
// first sort.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// sortedEducations returns a copy ordered most recent first by end
// date; records without a parseable end date sink last.
func sortedEducations(in []model.Education) []model.Education {
	out := append([]model.Education(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].EndDate).After(parseDate(out[j].EndDate))
	})
	return out
}

// sortedExperiences returns a copy ordered most recent first by start
// date; records without a parseable start date sink last.
func sortedExperiences(in []model.WorkExperience) []model.WorkExperience {
	out := append([]model.WorkExperience(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].StartDate).After(parseDate(out[j].StartDate))
	})
	return out
}

func sortedProjects(in []model.Project) []model.Project {
	out := append([]model.Project(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].StartDate).After(parseDate(out[j].StartDate))
	})
	return out
}

// sortedReferences returns a copy ordered alphabetically by name.
func sortedReferences(in []model.Reference) []model.Reference {
	out := append([]model.Reference(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// dateRange formats "start – end". A blank end with a known start
// reads as an ongoing engagement; a blank start leaves just the end.
func dateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " – Present"
	}
	return start + " – " + end
}
