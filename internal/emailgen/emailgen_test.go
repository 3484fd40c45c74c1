package emailgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates_OrderAndNormalization(t *testing.T) {
	got := Candidates("John", "Smith", "https://www.Example.com/about")

	want := []string{
		"john@example.com",
		"smith@example.com",
		"john.smith@example.com",
		"johnsmith@example.com",
		"jsmith@example.com",
		"johns@example.com",
		"j.smith@example.com",
		"john_smith@example.com",
	}
	assert.Equal(t, want, got)
}

func TestCandidates_Deterministic(t *testing.T) {
	a := Candidates("Jane", "Doe", "acme.io")
	b := Candidates("Jane", "Doe", "acme.io")
	assert.Equal(t, a, b)
}

func TestCandidates_CollapsesDuplicates(t *testing.T) {
	// A one-letter first name makes first@ and flast@ collide with
	// f.last-style forms; each address must appear once.
	got := Candidates("J", "Smith", "example.com")
	seen := map[string]int{}
	for _, addr := range got {
		seen[addr]++
	}
	for addr, n := range seen {
		assert.Equal(t, 1, n, "duplicate address %s", addr)
	}
}

func TestCandidates_FoldsAccents(t *testing.T) {
	got := Candidates("José", "Muñoz", "ejemplo.es")
	assert.NotEmpty(t, got)
	assert.Equal(t, "jose@ejemplo.es", got[0])
	assert.Contains(t, got, "jose.munoz@ejemplo.es")
}

func TestCandidates_EmptyInputs(t *testing.T) {
	assert.Nil(t, Candidates("", "Smith", "example.com"))
	assert.Nil(t, Candidates("John", "", "example.com"))
	assert.Nil(t, Candidates("John", "Smith", ""))
	assert.Nil(t, Candidates("John", "Smith", "https://"))
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.Example.com/about", "example.com"},
		{"http://example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"example.com/team/leadership", "example.com"},
		{"  Example.COM  ", "example.com"},
		{"https://shop.example.co.uk?q=1", "shop.example.co.uk"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDomain(tt.raw), "raw: %q", tt.raw)
	}
}
