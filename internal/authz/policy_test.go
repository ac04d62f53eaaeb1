package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatedPolicy(t *testing.T) {
	policy := GatedPolicy()

	assert.True(t, policy.Requires(OpMainPage))
	assert.True(t, policy.Requires(OpAddRecipe))
	assert.True(t, policy.Requires(OpEditRecipe))
	assert.True(t, policy.Requires(OpDeleteRecipe))

	assert.False(t, policy.Requires(OpListRecipes))
	assert.False(t, policy.Requires(OpViewRecipe))
	assert.False(t, policy.Requires(OpSignup))
	assert.False(t, policy.Requires(OpLogin))
}

func TestOpenPolicy(t *testing.T) {
	policy := OpenPolicy()

	assert.False(t, policy.Requires(OpAddRecipe))
	assert.False(t, policy.Requires(OpEditRecipe))
	assert.False(t, policy.Requires(OpDeleteRecipe))
	assert.False(t, policy.Requires(OpMainPage))
}

func TestFromName(t *testing.T) {
	assert.False(t, FromName("open").Requires(OpAddRecipe))
	assert.True(t, FromName("gated").Requires(OpAddRecipe))
	assert.True(t, FromName("").Requires(OpAddRecipe))
}
