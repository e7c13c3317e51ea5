package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/empiricalrun/flashimpact/internal/types"
)

func TestAggregateDirectWinsOverHelper(t *testing.T) {
	direct := []types.TestImpact{
		{TestName: "login works", FilePath: "file.ts", ChangeType: types.ChangeModified, LinesChanged: []int{4}},
	}
	helper := []types.TestImpact{
		{TestName: "login works", FilePath: "file.ts", ChangeType: types.ChangeModified, ImpactedByHelper: "utils/auth.ts:login"},
	}

	result := Aggregate(direct, helper)

	assert.Len(t, result, 1)
	assert.Equal(t, "", result[0].ImpactedByHelper)
	assert.Equal(t, []int{4}, result[0].LinesChanged)
}

func TestAggregateKeepsDistinctKeys(t *testing.T) {
	direct := []types.TestImpact{
		{TestName: "a", FilePath: "x.spec.ts", ChangeType: types.ChangeAdded},
	}
	helper := []types.TestImpact{
		{TestName: "b", FilePath: "x.spec.ts", ChangeType: types.ChangeModified, ImpactedByHelper: "h.ts:fn"},
		{TestName: "a", FilePath: "y.spec.ts", ChangeType: types.ChangeModified, ImpactedByHelper: "h.ts:fn"},
	}

	result := Aggregate(direct, helper)
	assert.Len(t, result, 3)
}

func TestAggregateDuplicateHelperAttributions(t *testing.T) {
	// A test invoking two changed functions arrives as two helper records;
	// only the first survives the presentation-key dedup.
	helper := []types.TestImpact{
		{TestName: "t", FilePath: "x.spec.ts", ChangeType: types.ChangeModified, ImpactedByHelper: "h.ts:one"},
		{TestName: "t", FilePath: "x.spec.ts", ChangeType: types.ChangeModified, ImpactedByHelper: "h.ts:two"},
	}

	result := Aggregate(nil, helper)
	assert.Len(t, result, 1)
	assert.Equal(t, "h.ts:one", result[0].ImpactedByHelper)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, nil))
}
