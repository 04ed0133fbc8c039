package language

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

const (
	// AutoCode is the sentinel source code that triggers detection before
	// translation. It is never a key in the catalog.
	AutoCode = "auto"
	// AutoName is the reserved display label for AutoCode. It is valid only
	// as a source selection, never as a target.
	AutoName = "automatic detection"
	// UnknownName is returned for codes the catalog does not know.
	UnknownName = "unknown"
)

// ErrUnknownLanguage reports a display name with no catalog entry.
var ErrUnknownLanguage = errors.New("unknown language")

// Pair is one code/name row of the canonical language table.
type Pair struct {
	Code string
	Name string
}

// Catalog is a read-only bidirectional mapping between language codes and
// display names. The reverse (name to code) map is derived from the canonical
// code to name table; duplicate names resolve last-write-wins.
type Catalog struct {
	nameByCode map[string]string
	codeByName map[string]string
	ordered    []Pair
}

// NewCatalog builds a catalog from an ordered code/name table. Duplicate
// codes are rejected.
func NewCatalog(table []Pair) (*Catalog, error) {
	c := &Catalog{
		nameByCode: make(map[string]string, len(table)),
		codeByName: make(map[string]string, len(table)),
		ordered:    make([]Pair, 0, len(table)),
	}

	for _, row := range table {
		code := NormalizeTag(row.Code)
		name := strings.ToLower(strings.TrimSpace(row.Name))
		if code == "" || name == "" {
			return nil, fmt.Errorf("invalid catalog row %q/%q", row.Code, row.Name)
		}
		if code == AutoCode {
			return nil, fmt.Errorf("catalog must not contain the sentinel code %q", AutoCode)
		}
		if name == AutoName {
			return nil, fmt.Errorf("catalog must not contain the reserved label %q", AutoName)
		}
		if _, exists := c.nameByCode[code]; exists {
			return nil, fmt.Errorf("duplicate language code %q", code)
		}
		c.nameByCode[code] = name
		c.codeByName[name] = code
		c.ordered = append(c.ordered, Pair{Code: code, Name: name})
	}

	if len(c.ordered) == 0 {
		return nil, fmt.Errorf("catalog table is empty")
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the compiled-in language table.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := NewCatalog(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("language: invalid default table: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// NameForCode resolves a language code to its display name. Unknown codes
// resolve to UnknownName.
func (c *Catalog) NameForCode(code string) string {
	if c == nil {
		return UnknownName
	}
	normalized := NormalizeTag(code)
	if normalized == AutoCode {
		return AutoName
	}
	if name, ok := c.nameByCode[normalized]; ok {
		return name
	}
	// Providers may report region-qualified tags ("pt-br") for languages the
	// table keys by primary subtag only.
	if name, ok := c.nameByCode[NormalizeCode(code)]; ok {
		return name
	}
	return UnknownName
}

// CodeForName resolves a display name to its code. The reserved label
// AutoName resolves to AutoCode without a table lookup; any other absent
// name fails with ErrUnknownLanguage.
func (c *Catalog) CodeForName(name string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == AutoName {
		return AutoCode, nil
	}
	if c == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	if code, ok := c.codeByName[trimmed]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// Has reports whether code is a key in the catalog. The sentinel AutoCode is
// not a catalog key.
func (c *Catalog) Has(code string) bool {
	if c == nil {
		return false
	}
	_, ok := c.nameByCode[NormalizeTag(code)]
	return ok
}

// ResolveCode accepts either a language code or a display name and returns
// the code. AutoCode and AutoName both resolve to AutoCode.
func (c *Catalog) ResolveCode(raw string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == AutoCode || trimmed == AutoName {
		return AutoCode, nil
	}
	if c.Has(trimmed) {
		return NormalizeTag(trimmed), nil
	}
	return c.CodeForName(trimmed)
}

// Pairs returns the catalog rows in canonical table order.
func (c *Catalog) Pairs() []Pair {
	if c == nil {
		return nil
	}
	out := make([]Pair, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// TargetNames lists display names valid as a translation target, in table
// order, without duplicates.
func (c *Catalog) TargetNames() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(c.ordered))
	names := make([]string, 0, len(c.ordered))
	for _, row := range c.ordered {
		if _, dup := seen[row.Name]; dup {
			continue
		}
		seen[row.Name] = struct{}{}
		names = append(names, row.Name)
	}
	return names
}

// SourceNames lists display names valid as a translation source: the
// reserved automatic-detection label followed by every target name.
func (c *Catalog) SourceNames() []string {
	targets := c.TargetNames()
	names := make([]string, 0, len(targets)+1)
	names = append(names, AutoName)
	return append(names, targets...)
}
