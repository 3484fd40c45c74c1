// Package names decides whether free-text fragments are plausible human names.
package names

import (
	"bufio"
	"bytes"
	_ "embed"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

//go:embed data/first_names.txt
var embeddedNames []byte

// Set is an immutable membership set of known first names.
// Loaded once at startup and shared by all extraction calls; membership
// checks are case-sensitive exact matches.
type Set struct {
	members map[string]struct{}
}

// LoadEmbeddedSet builds a Set from the name list compiled into the binary.
func LoadEmbeddedSet() (*Set, error) {
	return loadSet(bufio.NewScanner(bytes.NewReader(embeddedNames)))
}

// LoadSetFromFile builds a Set from a newline-delimited name list on disk.
// Used when a larger corpus than the embedded one is available.
func LoadSetFromFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "names: open name list")
	}
	defer func() { _ = f.Close() }()
	return loadSet(bufio.NewScanner(f))
}

// NewSet builds a Set from an explicit slice. Intended for tests.
func NewSet(entries []string) *Set {
	members := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e != "" {
			members[e] = struct{}{}
		}
	}
	return &Set{members: members}
}

func loadSet(scanner *bufio.Scanner) (*Set, error) {
	members := make(map[string]struct{}, 2048)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		members[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "names: scan name list")
	}
	if len(members) == 0 {
		return nil, eris.New("names: name list is empty")
	}
	return &Set{members: members}, nil
}

// Contains reports whether name is a known first name. Case-sensitive.
func (s *Set) Contains(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Len returns the number of distinct names in the set.
func (s *Set) Len() int {
	return len(s.members)
}
