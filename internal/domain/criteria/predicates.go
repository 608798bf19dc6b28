package criteria

import (
	"slices"

	"bulk-cleanup/internal/domain/record"
)

// UserPredicate marks a user for deletion. Predicates are independent and
// combined with OR.
type UserPredicate struct {
	Name  string
	Match func(c Criteria, u record.User) bool
}

var userPredicates = []UserPredicate{
	{Name: "role", Match: matchRole},
	{Name: "no_name", Match: matchNoName},
	{Name: "unlisted_domain", Match: matchUnlistedDomain},
}

func matchRole(c Criteria, u record.User) bool {
	return c.DeleteByRole != "" && u.HasRole(c.DeleteByRole)
}

func matchNoName(c Criteria, u record.User) bool {
	return c.DeleteNoName && !u.HasName()
}

// An empty allow-list disables the domain rule instead of matching everyone.
func matchUnlistedDomain(c Criteria, u record.User) bool {
	if !c.DeleteUnlistedDomains || len(c.AllowedDomains) == 0 {
		return false
	}
	return !slices.Contains(c.AllowedDomains, u.EmailDomain())
}

// ShouldDeleteUser never returns true for an administrator.
func (c Criteria) ShouldDeleteUser(u record.User) bool {
	if u.IsAdministrator() {
		return false
	}
	for _, p := range userPredicates {
		if p.Match(c, u) {
			return true
		}
	}
	return false
}

// MatchedBy returns the names of every predicate that marks u; empty for administrators.
func (c Criteria) MatchedBy(u record.User) []string {
	if u.IsAdministrator() {
		return nil
	}
	var names []string
	for _, p := range userPredicates {
		if p.Match(c, u) {
			names = append(names, p.Name)
		}
	}
	return names
}
