package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/builder"
	"github.com/polymesh/polymesh/verify"
)

func TestInvariants_WellFormedTetrahedronHasNoViolations(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	assert.Empty(t, verify.Properties(m))
	assert.Empty(t, verify.References(m))
	assert.Empty(t, verify.Invariants(m, verify.DefaultMaxFaceDegree))
	assert.Empty(t, verify.Polygonality(m))
}

// TestInvariants_DetectsBrokenTwin builds a tetrahedron and then
// deliberately corrupts one twin link, expecting Invariants to flag it.
func TestInvariants_DetectsBrokenTwin(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	e := m.EdgeIDs()[0]
	_, ok := m.Twin(e)
	require.True(t, ok)

	// Break the involution: e's twin no longer points back to e.
	other := m.EdgeIDs()[1]
	m.SetTwin(e, other)

	violations := verify.Invariants(m, verify.DefaultMaxFaceDegree)
	assert.NotEmpty(t, violations)
}

func TestMustHold_PanicsOnViolations(t *testing.T) {
	assert.Panics(t, func() {
		verify.MustHold([]verify.Violation{{Check: "x", Message: "broken"}})
	})
}

func TestMustHold_NoPanicWhenClean(t *testing.T) {
	assert.NotPanics(t, func() {
		verify.MustHold(nil)
	})
}
