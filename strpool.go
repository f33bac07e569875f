package custody

// stringPool numbers distinct strings in order of first appearance.
// Tables use one pool for their bins and one for their categories.
type stringPool struct {
	pool  []string
	index map[string]int
}

func newStringPool(capacity int) *stringPool {
	return &stringPool{
		pool:  make([]string, 0, capacity),
		index: make(map[string]int, capacity),
	}
}

// Add returns the number of s, adding s if needed. added reports
// whether s was new.
func (sp *stringPool) Add(s string) (i int, added bool) {
	if i := sp.Find(s); i != -1 {
		return i, false
	}
	sp.index[s] = len(sp.pool)
	sp.pool = append(sp.pool, s)
	return len(sp.pool) - 1, true
}

// Find returns the number of s or -1.
func (sp *stringPool) Find(s string) int {
	if i, ok := sp.index[s]; ok {
		return i
	}
	return -1
}

func (sp *stringPool) Get(i int) string {
	return sp.pool[i]
}

func (sp *stringPool) Len() int { return len(sp.pool) }

// Strings returns a copy of all pooled strings.
func (sp *stringPool) Strings() []string {
	return append([]string(nil), sp.pool...)
}
