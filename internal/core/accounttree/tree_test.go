package accounttree_test

import (
	"testing"

	"github.com/fleetvision/fleet_backoffice/internal/core/accounttree"
	"github.com/fleetvision/fleet_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acct(id, parentID, code string, allowPosting bool) domain.Account {
	return domain.Account{
		AccountID:       id,
		Code:            code,
		Name:            "Account " + code,
		AccountType:     domain.Asset,
		ParentAccountID: parentID,
		AllowPosting:    allowPosting,
		IsActive:        true,
	}
}

func TestBuild_AssignsLevelsAndOrdersSiblingsByCode(t *testing.T) {
	accounts := []domain.Account{
		acct("leaf-b", "root", "1200", true),
		acct("root", "", "1000", false),
		acct("leaf-a", "root", "1100", true),
		acct("grandchild", "leaf-a", "1110", true),
	}

	tree, err := accounttree.Build(accounts)
	require.NoError(t, err)
	require.Equal(t, 4, tree.Len())

	roots := tree.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "root", roots[0].Value.AccountID)
	assert.Equal(t, 1, roots[0].Level)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "1100", roots[0].Children[0].Value.Code)
	assert.Equal(t, "1200", roots[0].Children[1].Value.Code)
	assert.Equal(t, 2, roots[0].Children[0].Level)

	gc, ok := tree.Lookup("grandchild")
	require.True(t, ok)
	assert.Equal(t, 3, gc.Level)
}

func TestBuild_MultipleRoots(t *testing.T) {
	accounts := []domain.Account{
		acct("assets", "", "1000", false),
		acct("liabilities", "", "2000", false),
		acct("cash", "assets", "1101", true),
	}

	tree, err := accounttree.Build(accounts)
	require.NoError(t, err)

	roots := tree.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "1000", roots[0].Value.Code)
	assert.Equal(t, "2000", roots[1].Value.Code)
}

func TestBuild_RejectsCycle(t *testing.T) {
	accounts := []domain.Account{
		acct("a", "b", "1000", false),
		acct("b", "a", "1100", false),
	}

	_, err := accounttree.Build(accounts)
	require.ErrorIs(t, err, accounttree.ErrCycle)
}

func TestBuild_RejectsMissingParent(t *testing.T) {
	accounts := []domain.Account{
		acct("orphan", "no-such-parent", "1100", true),
	}

	_, err := accounttree.Build(accounts)
	require.ErrorIs(t, err, accounttree.ErrMissingParent)
}

func TestBuild_RejectsDuplicateID(t *testing.T) {
	accounts := []domain.Account{
		acct("dup", "", "1000", false),
		acct("dup", "", "1100", false),
	}

	_, err := accounttree.Build(accounts)
	require.ErrorIs(t, err, accounttree.ErrDuplicateID)
}

func TestAncestors(t *testing.T) {
	accounts := []domain.Account{
		acct("root", "", "1000", false),
		acct("mid", "root", "1100", false),
		acct("leaf", "mid", "1110", true),
	}

	tree, err := accounttree.Build(accounts)
	require.NoError(t, err)

	chain := tree.Ancestors("leaf")
	require.Len(t, chain, 2)
	assert.Equal(t, "mid", chain[0].Value.AccountID)
	assert.Equal(t, "root", chain[1].Value.AccountID)

	assert.Empty(t, tree.Ancestors("root"))
	assert.Nil(t, tree.Ancestors("unknown"))
}

func TestFlatten_DepthFirstDisplayOrder(t *testing.T) {
	accounts := []domain.Account{
		acct("root", "", "1000", false),
		acct("b", "root", "1200", true),
		acct("a", "root", "1100", false),
		acct("a1", "a", "1110", true),
	}

	tree, err := accounttree.Build(accounts)
	require.NoError(t, err)

	flat := tree.Flatten()
	codes := make([]string, len(flat))
	for i, a := range flat {
		codes[i] = a.Code
	}
	assert.Equal(t, []string{"1000", "1100", "1110", "1200"}, codes)
}

func TestFilter_KeepsAncestorsOfMatches(t *testing.T) {
	accounts := []domain.Account{
		acct("root", "", "1000", false),
		acct("summary", "root", "1100", false),
		acct("posting", "summary", "1110", true),
		acct("other", "root", "1200", false),
	}

	tree, err := accounttree.Build(accounts)
	require.NoError(t, err)

	// Keep only posting accounts; their summary ancestors must survive
	// so the filtered forest still displays as a tree.
	filtered := tree.Filter(func(a domain.Account) bool { return a.AllowPosting })

	assert.Equal(t, 3, filtered.Len())
	_, ok := filtered.Lookup("posting")
	assert.True(t, ok)
	_, ok = filtered.Lookup("summary")
	assert.True(t, ok)
	_, ok = filtered.Lookup("other")
	assert.False(t, ok)

	// Original tree is untouched.
	assert.Equal(t, 4, tree.Len())
}
