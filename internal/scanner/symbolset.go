package scanner

// SymbolSet maps each discovered symbol name to its occurrences within one
// module, preserving first-discovery order. The allocator depends on that
// order, so the set is never rebuilt from an unordered map.
type SymbolSet struct {
	names []string
	occ   map[string][]string
}

// NewSymbolSet creates an empty set.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{occ: make(map[string][]string)}
}

// Add records one occurrence of symbol in file.
func (s *SymbolSet) Add(symbol, file string) {
	if _, ok := s.occ[symbol]; !ok {
		s.names = append(s.names, symbol)
	}
	s.occ[symbol] = append(s.occ[symbol], file)
}

// Names returns the symbol names in first-discovery order.
func (s *SymbolSet) Names() []string {
	return s.names
}

// Occurrences returns the file paths where symbol was found, in discovery
// order.
func (s *SymbolSet) Occurrences(symbol string) []string {
	return s.occ[symbol]
}

// Len returns the number of distinct symbols.
func (s *SymbolSet) Len() int {
	return len(s.names)
}
