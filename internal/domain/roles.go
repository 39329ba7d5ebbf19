package domain

import (
	"encoding/json"
	"strings"
)

// Roles is a set of role flags. A position may carry several of them,
// "allrounder" for example feeds both the batting and the bowling side.
type Roles uint8

const (
	RoleBatsman Roles = 1 << iota
	RoleBowler
	RoleAllrounder
	RoleWicketkeeper
)

var roleTokens = []struct {
	role  Roles
	token string
}{
	{RoleBatsman, "batsman"},
	{RoleBowler, "bowler"},
	{RoleAllrounder, "allrounder"},
	{RoleWicketkeeper, "wicketkeeper"},
}

// ParseRoles matches the position text against the role tokens by case-insensitive substring.
func ParseRoles(position string) Roles {
	position = strings.ToLower(position)
	var r Roles
	for _, t := range roleTokens {
		if strings.Contains(position, t.token) {
			r |= t.role
		}
	}
	return r
}

func (r Roles) Has(role Roles) bool {
	return r&role != 0
}

func (r Roles) Bats() bool {
	return r.Has(RoleBatsman | RoleAllrounder)
}

func (r Roles) Bowls() bool {
	return r.Has(RoleBowler | RoleAllrounder)
}

func (r Roles) KeepsWicket() bool {
	return r.Has(RoleWicketkeeper)
}

func (r Roles) Names() []string {
	names := make([]string, 0, len(roleTokens))
	for _, t := range roleTokens {
		if r.Has(t.role) {
			names = append(names, t.token)
		}
	}
	return names
}

func (r Roles) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Names())
}
