// Package objkey builds and checks the object-storage key namespace. Every
// key starts with the path of the entity that owns it, which is what a read
// is checked against before a file is served.
package objkey

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const root = "claims"

var reExt = regexp.MustCompile(`^[a-z0-9]{1,10}$`)

// now and randomID are swapped in tests.
var (
	now      = func() time.Time { return time.Now().UTC() }
	randomID = func() string { return uuid.NewString() }
)

// Ext returns the lowercased extension of filename, or "bin".
func Ext(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if !reExt.MatchString(ext) {
		return "bin"
	}
	return ext
}

func leaf(filename string) string {
	return fmt.Sprintf("%d-%s.%s", now().UnixMilli(), randomID(), Ext(filename))
}

func ClaimPrefix(claimID string) string { return root + "/" + claimID + "/" }

func FinancialPrefix(claimID string) string { return root + "/financial/" + claimID + "/" }

func OffboardingPrefix(claimID string) string { return root + "/offboarding/" + claimID + "/" }

// Claim: claims/{claimId}/{ts}-{rand}.{ext}
func Claim(claimID, filename string) string { return ClaimPrefix(claimID) + leaf(filename) }

// BankStatement: claims/financial/{claimId}/{bankAccountId}/{ts}-{rand}.{ext}
func BankStatement(claimID, bankAccountID, filename string) string {
	return FinancialPrefix(claimID) + bankAccountID + "/" + leaf(filename)
}

// CardStatement: claims/financial/{claimId}/{creditCardId}/{ts}-{rand}.{ext}
func CardStatement(claimID, creditCardID, filename string) string {
	return FinancialPrefix(claimID) + creditCardID + "/" + leaf(filename)
}

// OffboardingDocument: claims/offboarding/{claimId}/{documentType}/{ts}-{rand}.{ext}
func OffboardingDocument(claimID, documentType, filename string) string {
	return OffboardingPrefix(claimID) + documentType + "/" + leaf(filename)
}

// Owns reports whether key lives under prefix. Keys with empty or dot
// segments never match.
func Owns(prefix, key string) bool {
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return !strings.ContainsAny(key, "\\\x00")
}
