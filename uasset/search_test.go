package uasset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchTable = StringTable{
	{Key: "Menu_Start", Value: "Start Game"},
	{Key: "Menu_Quit", Value: "Quit"},
	{Key: "Dialog_Hello", Value: "Hello there"},
	{Key: "Dialog_Bye", Value: "goodbye"},
}

func TestSearch_Keys(t *testing.T) {
	got, err := Search(searchTable, "Menu_", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, searchTable[:2], got)
}

func TestSearch_Values(t *testing.T) {
	got, err := Search(searchTable, "Hello", SearchOptions{ValuesOnly: true})
	require.NoError(t, err)
	assert.Equal(t, StringTable{searchTable[2]}, got)
}

func TestSearch_IgnoreCase(t *testing.T) {
	got, err := Search(searchTable, "GOODBYE", SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Search(searchTable, "GOODBYE", SearchOptions{IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, StringTable{searchTable[3]}, got)
}

func TestSearch_KeyFilters(t *testing.T) {
	got, err := Search(searchTable, ".", SearchOptions{IncludeKeys: []string{"^Dialog_"}})
	require.NoError(t, err)
	assert.Equal(t, searchTable[2:], got)

	got, err = Search(searchTable, ".", SearchOptions{ExcludeKeys: []string{"Quit", "Bye"}})
	require.NoError(t, err)
	assert.Equal(t, StringTable{searchTable[0], searchTable[2]}, got)
}

func TestSearch_BadPattern(t *testing.T) {
	_, err := Search(searchTable, "(", SearchOptions{})
	assert.Error(t, err)

	_, err = Search(searchTable, ".", SearchOptions{IncludeKeys: []string{"("}})
	assert.Error(t, err)
}
