package models

// Role is the closed set of employee roles. Stored as a string column but
// only ever compared against these constants.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleShopper Role = "shopper"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShopper:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
