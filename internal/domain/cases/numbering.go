package cases

import (
	"strconv"
	"strings"
)

const caseIDPrefix = "C-"

func FormatCaseID(n int64) string { return caseIDPrefix + strconv.FormatInt(n, 10) }

// ParseCaseNumber returns the numeric suffix of a "C-{n}" id.
func ParseCaseNumber(id string) (int64, bool) {
	if !strings.HasPrefix(id, caseIDPrefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(id[len(caseIDPrefix):], 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// NextCaseNumber is the highest parseable suffix plus one, or 1 when none parse.
func NextCaseNumber(existing []string) int64 {
	var max int64
	for _, id := range existing {
		if n, ok := ParseCaseNumber(id); ok && n > max {
			max = n
		}
	}
	return max + 1
}

// LooksLikeCaseID reports whether s should be resolved by CaseID rather than ID.
func LooksLikeCaseID(s string) bool {
	_, ok := ParseCaseNumber(s)
	return ok
}
