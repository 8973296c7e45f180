package uasset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	a := StringTable{
		{Key: "Same", Value: "v"},
		{Key: "Changed", Value: "old"},
		{Key: "Removed", Value: "gone"},
	}
	b := StringTable{
		{Key: "Same", Value: "v"},
		{Key: "Changed", Value: "new"},
		{Key: "Added", Value: "fresh"},
	}

	assert.Equal(t, []Change{
		{Kind: Changed, Key: "Changed", OldValue: "old", NewValue: "new"},
		{Kind: Removed, Key: "Removed", OldValue: "gone"},
		{Kind: Added, Key: "Added", NewValue: "fresh"},
	}, Diff(a, b))
}

func TestDiff_Identical(t *testing.T) {
	a := StringTable{{Key: "K", Value: "V"}}
	assert.Empty(t, Diff(a, a))
}

func TestDiff_DuplicateKeysLastWins(t *testing.T) {
	a := StringTable{
		{Key: "Dup", Value: "first"},
		{Key: "Dup", Value: "second"},
	}
	b := StringTable{{Key: "Dup", Value: "second"}}

	assert.Empty(t, Diff(a, b))

	c := StringTable{{Key: "Dup", Value: "third"}}
	assert.Equal(t, []Change{
		{Kind: Changed, Key: "Dup", OldValue: "second", NewValue: "third"},
	}, Diff(a, c))
}

func TestDiff_Empty(t *testing.T) {
	b := StringTable{{Key: "K", Value: "V"}}
	assert.Equal(t, []Change{{Kind: Added, Key: "K", NewValue: "V"}}, Diff(nil, b))
	assert.Equal(t, []Change{{Kind: Removed, Key: "K", OldValue: "V"}}, Diff(b, nil))
}
