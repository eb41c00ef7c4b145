package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseInsensitiveOneOf(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	const tag = "caseinsensitiveoneof=listings#query listing#detail"

	assert.NoError(t, v.Var("listings#query", tag))
	assert.NoError(t, v.Var("Listing#Detail", tag))
	assert.NoError(t, v.Var("LISTINGS#QUERY", tag))
	assert.Error(t, v.Var("stats", tag))
	assert.Error(t, v.Var("", tag))
}
