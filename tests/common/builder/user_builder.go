//go:build unit || e2e

package builder

import (
	"bulk-cleanup/internal/domain/record"
)

type UserBuilder struct {
	Login     string
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Login:     "jdoe",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Roles:     []string{"customer"},
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) Build() record.User {
	return record.User{
		Login:     u.Login,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     append([]string(nil), u.Roles...),
	}
}

func (u *UserBuilder) WithLogin(login string) *UserBuilder {
	u.Login = login
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	u.Roles = roles
	return u
}

func (u *UserBuilder) WithoutName() *UserBuilder {
	u.FirstName = ""
	u.LastName = ""
	return u
}

func (u *UserBuilder) AsAdministrator() *UserBuilder {
	u.Roles = append(u.Roles, record.RoleAdministrator)
	return u
}
