package accounttree_test

import (
	"testing"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSet_Toggle(t *testing.T) {
	set := accounttree.NewNodeSet()

	assert.False(t, set.IsExpanded("a"))
	assert.True(t, set.Toggle("a"), "first toggle expands")
	assert.True(t, set.IsExpanded("a"))
	assert.False(t, set.Toggle("a"), "second toggle collapses")
	assert.False(t, set.IsExpanded("a"))
}

func TestNodeSet_ExpandAllAndCollapseAll(t *testing.T) {
	tree, err := accounttree.Build([]domain.Account{
		acct("root", "", "1000", false),
		acct("leaf", "root", "1100", true),
	})
	require.NoError(t, err)

	set := accounttree.NewNodeSet()
	accounttree.ExpandAll(set, tree)
	assert.True(t, set.IsExpanded("root"))
	assert.True(t, set.IsExpanded("leaf"))

	set.CollapseAll()
	assert.False(t, set.IsExpanded("root"))
	assert.False(t, set.IsExpanded("leaf"))
}
