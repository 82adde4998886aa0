package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateKind(t *testing.T) {
	tests := []struct {
		category string
		want     TemplateKind
	}{
		{category: "login", want: KindLogin},
		{category: "Login", want: KindLogin},
		{category: " PASSWORD ", want: KindPassword},
		{category: "identity", want: KindUnknown},
		{category: "", want: KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTemplateKind(tt.category), "category %q", tt.category)
	}
}

func TestTemplateKind_String(t *testing.T) {
	assert.Equal(t, "login", KindLogin.String())
	assert.Equal(t, "password", KindPassword.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", TemplateKind(42).String())
}

func TestIndex_FindTitleFirstMatchWins(t *testing.T) {
	idx := Index{Entries: []IndexEntry{
		{Identifier: "id-1", Title: "GitHub"},
		{Identifier: "id-2", Title: "Home WiFi"},
		{Identifier: "id-3", Title: "GitHub"},
	}}

	entry, ok := idx.FindTitle("GitHub")
	require.True(t, ok)
	assert.Equal(t, "id-1", entry.Identifier)

	_, ok = idx.FindTitle("github")
	assert.False(t, ok, "title matching is exact")

	_, ok = idx.FindTitle("Missing")
	assert.False(t, ok)
}

func TestIndex_Titles(t *testing.T) {
	idx := Index{Entries: []IndexEntry{
		{Title: "GitHub"},
		{Title: "Home WiFi"},
		{Title: "GitHub"},
	}}

	assert.Equal(t, []string{"GitHub", "Home WiFi", "GitHub"}, idx.Titles())
	assert.Empty(t, (&Index{}).Titles())
}
