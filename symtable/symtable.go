// Package symtable implements a lexically-scoped symbol table: a
// name -> value mapping with shadowing and pop-on-escape, intended for
// semantic-analysis passes built on top of a packrat parse tree. It
// shares its nested-scope, shadow-stack design with the parser itself
// but is a freestanding data structure.
package symtable

// binding is one entry on a name's shadow stack: the scope depth it was
// defined or last updated at, and its current value.
type binding[V any] struct {
	level int
	value V
}

// scope tracks which names were defined or updated (without keep) while
// this scope was open, so escape() knows which shadow-stack entries to
// pop.
type scope struct {
	defined []string
	updated []string
}

// Entry is a name/value pair, returned by LocalDefinitions and
// LocalUpdates.
type Entry[V any] struct {
	Name  string
	Value V
}

// Table is a lexically-scoped symbol table. The zero value is not usable;
// construct one with New.
type Table[V any] struct {
	names  map[string][]binding[V]
	scopes []scope
}

// New builds an empty symbol table with no scopes open.
func New[V any]() *Table[V] {
	return &Table[V]{names: make(map[string][]binding[V])}
}

// Enter pushes a new scope. The outermost scope, once entered, is depth 1
// (depth 0 is "no scope open" — Define, Update et al. outside any Enter
// are a programmer error, and an unbalanced Escape is undefined
// behavior).
func (t *Table[V]) Enter() {
	t.scopes = append(t.scopes, scope{})
}

// level returns the current scope depth, 0 meaning no scope is open.
func (t *Table[V]) level() int {
	return len(t.scopes)
}

// Define records name = value in the current scope. It returns false
// without changing anything if name is already defined in this same
// scope (same-scope redefinition is rejected); otherwise it pushes a new
// shadow-stack entry — shadowing any outer-scope definition of the same
// name — and returns true.
func (t *Table[V]) Define(name string, value V) bool {
	stack := t.names[name]
	if len(stack) > 0 && stack[len(stack)-1].level == t.level() {
		return false
	}
	t.names[name] = append(stack, binding[V]{level: t.level(), value: value})
	top := &t.scopes[len(t.scopes)-1]
	top.defined = append(top.defined, name)
	return true
}

// Update mutates the existing definition of name to value. It returns
// false if name is undefined in any enclosing scope.
//
// If the innermost binding lives in an outer scope and keep is false, a
// new shadow-stack entry is pushed at the current scope (so Escape pops
// it, restoring the outer value); if keep is true, the outer binding is
// mutated in place with no pop record, so the new value persists past
// Escape. If the innermost binding already lives in the current scope,
// it is mutated in place either way and no new entry is pushed; that
// binding already has its pop record from the Define or Update that
// created it at this scope, so no second record is added.
func (t *Table[V]) Update(name string, value V, keep bool) bool {
	stack := t.names[name]
	if len(stack) == 0 {
		return false
	}
	top := len(stack) - 1
	if stack[top].level == t.level() {
		stack[top].value = value
		t.names[name] = stack
		// An entry for this level already has a pop record, from
		// whichever of Define/Update first created it at this scope;
		// recordPopOnce keeps the invariant that each (level, name)
		// entry appears on exactly one of this scope's lists.
		if !keep {
			t.recordPopOnce(name)
		}
		return true
	}
	if keep {
		stack[top].value = value
		t.names[name] = stack
		return true
	}
	t.names[name] = append(stack, binding[V]{level: t.level(), value: value})
	t.recordPopOnce(name)
	return true
}

// recordPopOnce records name in the current scope's updated list, unless
// it is already recorded there or in the defined list for this scope.
func (t *Table[V]) recordPopOnce(name string) {
	s := &t.scopes[len(t.scopes)-1]
	for _, n := range s.defined {
		if n == name {
			return
		}
	}
	for _, n := range s.updated {
		if n == name {
			return
		}
	}
	s.updated = append(s.updated, name)
}

// Lookup returns the innermost (topmost) value bound to name, if any.
func (t *Table[V]) Lookup(name string) (V, bool) {
	stack := t.names[name]
	if len(stack) == 0 {
		var zero V
		return zero, false
	}
	return stack[len(stack)-1].value, true
}

// DefinedSameScope reports whether name's innermost binding is at the
// current scope depth.
func (t *Table[V]) DefinedSameScope(name string) bool {
	stack := t.names[name]
	if len(stack) == 0 {
		return false
	}
	return stack[len(stack)-1].level == t.level()
}

// Escape pops the current scope. For every name recorded in this scope's
// define-list or updated-list, the corresponding shadow-stack entry is
// popped; a name whose stack becomes empty is removed from the table
// entirely.
func (t *Table[V]) Escape() {
	n := len(t.scopes)
	cur := t.scopes[n-1]
	t.scopes = t.scopes[:n-1]
	pop := func(name string) {
		stack := t.names[name]
		if len(stack) == 0 {
			return
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			delete(t.names, name)
			return
		}
		t.names[name] = stack
	}
	for _, name := range cur.defined {
		pop(name)
	}
	for _, name := range cur.updated {
		pop(name)
	}
}

// LocalDefinitions returns the names defined (via Define) in the current
// scope, with their current values.
func (t *Table[V]) LocalDefinitions() []Entry[V] {
	if len(t.scopes) == 0 {
		return nil
	}
	cur := t.scopes[len(t.scopes)-1]
	entries := make([]Entry[V], 0, len(cur.defined))
	for _, name := range cur.defined {
		v, _ := t.Lookup(name)
		entries = append(entries, Entry[V]{Name: name, Value: v})
	}
	return entries
}

// LocalUpdates returns the names updated (via Update with keep=false) in
// the current scope, with their current values.
func (t *Table[V]) LocalUpdates() []Entry[V] {
	if len(t.scopes) == 0 {
		return nil
	}
	cur := t.scopes[len(t.scopes)-1]
	entries := make([]Entry[V], 0, len(cur.updated))
	for _, name := range cur.updated {
		v, _ := t.Lookup(name)
		entries = append(entries, Entry[V]{Name: name, Value: v})
	}
	return entries
}
