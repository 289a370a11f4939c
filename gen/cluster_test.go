package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demogen/rng"
)

func TestValidateBoundsNonIncreasing(t *testing.T) {
	err := ValidateBounds("clusters", []Bound{
		{Upper: 50, ID: "a"},
		{Upper: 30, ID: "b"},
	}, 100)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestValidateBoundsTotalTooSmall(t *testing.T) {
	err := ValidateBounds("clusters", []Bound{
		{Upper: 40, ID: "a"},
		{Upper: 120, ID: "b"},
	}, 120)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestValidateBoundsOK(t *testing.T) {
	assert.NoError(t, ValidateBounds("clusters", []Bound{
		{Upper: 40, ID: "a"},
		{Upper: 80, ID: "b"},
		{Upper: 120, ID: "c"},
	}, 200))
	assert.NoError(t, ValidateBounds("clusters", nil, 200))
}

func TestTierFirstMatchWins(t *testing.T) {
	bounds := []Bound{
		{Upper: 40, ID: "c0"},
		{Upper: 80, ID: "c1"},
	}
	assert.Equal(t, "c0", Tier(0, bounds, "tail"))
	assert.Equal(t, "c0", Tier(39, bounds, "tail"))
	assert.Equal(t, "c1", Tier(40, bounds, "tail"))
	assert.Equal(t, "c1", Tier(79, bounds, "tail"))
	assert.Equal(t, "tail", Tier(80, bounds, "tail"))
}

func TestTierExhaustive(t *testing.T) {
	bounds := []Bound{
		{Upper: 40, ID: "c0"},
		{Upper: 80, ID: "c1"},
		{Upper: 120, ID: "c2"},
	}
	// Every index resolves to exactly one cluster.
	for i := 0; i < 200; i++ {
		id := Tier(i, bounds, "tail")
		assert.NotEmpty(t, id)
	}
}

// The reference scenario: 200 children over 50 parents with bounds
// (40,"C0") (80,"C1") (120,"C2"). Early indices pin to parents 0..2, the
// tail picks uniformly from parents 3..49.
func TestParentPolicyScenario(t *testing.T) {
	bounds := []Bound{
		{Upper: 40, ID: "C0"},
		{Upper: 80, ID: "C1"},
		{Upper: 120, ID: "C2"},
	}
	policy, err := NewParentPolicy(rng.New(42), bounds, 200, 50, TailUniform, "tail")
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		ordinal, cluster := policy.Assign(i)
		switch {
		case i < 40:
			assert.Equal(t, 0, ordinal)
			assert.Equal(t, "C0", cluster)
		case i < 80:
			assert.Equal(t, 1, ordinal)
			assert.Equal(t, "C1", cluster)
		case i < 120:
			assert.Equal(t, 2, ordinal)
			assert.Equal(t, "C2", cluster)
		default:
			assert.GreaterOrEqual(t, ordinal, 3)
			assert.LessOrEqual(t, ordinal, 49)
			assert.Equal(t, "tail", cluster)
		}
	}
}

func TestParentPolicyReproducible(t *testing.T) {
	bounds := []Bound{{Upper: 40, ID: "C0"}}

	assign := func() []int {
		policy, err := NewParentPolicy(rng.New(42), bounds, 200, 50, TailUniform, "tail")
		require.NoError(t, err)
		out := make([]int, 200)
		for i := range out {
			out[i], _ = policy.Assign(i)
		}
		return out
	}
	assert.Equal(t, assign(), assign())
}

func TestParentPolicyResidualCoversPool(t *testing.T) {
	bounds := []Bound{{Upper: 10, ID: "C0"}}
	policy, err := NewParentPolicy(rng.New(7), bounds, 5000, 8, TailUniform, "tail")
	require.NoError(t, err)

	seen := make(map[int]bool)
	for i := 10; i < 5000; i++ {
		ordinal, _ := policy.Assign(i)
		seen[ordinal] = true
	}
	// Uniform tail should reach every residual parent eventually.
	for p := 1; p < 8; p++ {
		assert.True(t, seen[p], "parent %d never assigned", p)
	}
	assert.False(t, seen[0], "pinned parent leaked into the residual pool")
}

func TestParentPolicyZipfTail(t *testing.T) {
	policy, err := NewParentPolicy(rng.New(7), nil, 5000, 20, TailZipf, "tail")
	require.NoError(t, err)

	counts := make(map[int]int)
	for i := 0; i < 5000; i++ {
		ordinal, cluster := policy.Assign(i)
		assert.Equal(t, "tail", cluster)
		assert.GreaterOrEqual(t, ordinal, 0)
		assert.Less(t, ordinal, 20)
		counts[ordinal]++
	}
	assert.NotEmpty(t, counts)
}

func TestParentPolicyNoResidual(t *testing.T) {
	bounds := []Bound{
		{Upper: 40, ID: "C0"},
		{Upper: 80, ID: "C1"},
	}
	_, err := NewParentPolicy(rng.New(1), bounds, 200, 2, TailUniform, "tail")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestParentPolicyUnknownSkew(t *testing.T) {
	_, err := NewParentPolicy(rng.New(1), nil, 100, 10, TailSkew("pareto"), "tail")
	assert.ErrorIs(t, err, ErrConfig)
}
