// Package authz holds the per-operation authentication policy table. The
// application historically shipped in two configurations: one gating every
// mutating route behind a login, one leaving everything public. Both are
// kept as explicit policies; config picks one.
package authz

// Operation names a route-level action the policy can gate.
type Operation string

const (
	OpListRecipes  Operation = "recipes.list"
	OpMainPage     Operation = "recipes.main"
	OpViewRecipe   Operation = "recipes.view"
	OpAddRecipe    Operation = "recipes.add"
	OpEditRecipe   Operation = "recipes.edit"
	OpDeleteRecipe Operation = "recipes.delete"
	OpSignup       Operation = "auth.signup"
	OpLogin        Operation = "auth.login"
)

// Policy maps operations to whether they require an authenticated identity.
// Operations absent from the table are public.
type Policy map[Operation]bool

// Requires reports whether op needs an authenticated identity.
func (p Policy) Requires(op Operation) bool {
	return p[op]
}

// GatedPolicy gates every mutating operation and the member landing page.
// This is the default configuration.
func GatedPolicy() Policy {
	return Policy{
		OpMainPage:     true,
		OpAddRecipe:    true,
		OpEditRecipe:   true,
		OpDeleteRecipe: true,
	}
}

// OpenPolicy leaves every operation public, including create/edit/delete.
func OpenPolicy() Policy {
	return Policy{}
}

// FromName resolves a configured policy name. Anything but "open" selects
// the gated policy.
func FromName(name string) Policy {
	if name == "open" {
		return OpenPolicy()
	}
	return GatedPolicy()
}
