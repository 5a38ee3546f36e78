package model

// Scope carries the caller identity into use cases. A non-empty UserID
// restricts the caller to the tasks it owns; an empty one is unrestricted.
type Scope struct {
	UserID string
}

// CanAccess reports whether the scope may see t.
func (sc Scope) CanAccess(t Task) bool {
	return sc.UserID == "" || t.Owner == sc.UserID
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
