package record

import (
	"slices"
	"strings"
)

// RoleAdministrator is never deleted, whatever the criteria say.
const RoleAdministrator = "administrator"

type User struct {
	ID        int64
	Login     string
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

func (u User) IsAdministrator() bool {
	return u.HasRole(RoleAdministrator)
}

func (u User) HasRole(role string) bool {
	return role != "" && slices.Contains(u.Roles, role)
}

func (u User) HasName() bool {
	return strings.TrimSpace(u.FirstName) != "" || strings.TrimSpace(u.LastName) != ""
}

// EmailDomain returns the lower-cased part after the last '@', or "" when there is none.
func (u User) EmailDomain() string {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

type Order struct {
	ID     int64
	Status string
}

type Coupon struct {
	ID     int64
	Code   string
	Status string
}
