package check

import "github.com/leapstack-labs/leapfol/pkg/bol"

// Scope is the prefix of a vocabulary accepted so far. References resolve
// only against symbols added to the scope.
type Scope struct {
	symbols map[string]bol.SymbolDecl
	decls   []bol.Declaration
}

// NewScope returns a scope containing decls. When an identifier is declared
// more than once the first declaration wins.
func NewScope(decls ...bol.Declaration) *Scope {
	s := &Scope{symbols: make(map[string]bol.SymbolDecl, len(decls))}
	for _, d := range decls {
		s.Add(d)
	}
	return s
}

// Add appends d to the scope.
func (s *Scope) Add(d bol.Declaration) {
	s.decls = append(s.decls, d)
	if sym, ok := d.(bol.SymbolDecl); ok {
		if _, exists := s.symbols[sym.Name()]; !exists {
			s.symbols[sym.Name()] = sym
		}
	}
}

// Lookup returns the symbol declaration named id, or nil.
func (s *Scope) Lookup(id string) bol.SymbolDecl {
	return s.symbols[id]
}

// Len returns the number of declarations in the scope.
func (s *Scope) Len() int { return len(s.decls) }
