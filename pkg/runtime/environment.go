package runtime

import "sort"

// Cell is a single named mutable storage location. Identity matters:
// two bindings that resolve to the same cell observe each other's
// writes, while independently-created cells with the same name do not.
type Cell struct {
	Name  string
	Value Value
}

// NewCell creates a fresh cell holding the given value.
func NewCell(name string, value Value) *Cell {
	return &Cell{Name: name, Value: value}
}

// Environment is a pair of name→cell mappings. `outer` holds, for every
// name visible from an enclosing scope, a handle to the same cell the
// enclosing scope uses; `local` holds cells created in this scope.
// Copying an environment copies cell handles, never cell contents.
type Environment struct {
	outer map[string]*Cell
	local map[string]*Cell
}

// NewEnvironment creates an empty root environment.
func NewEnvironment() *Environment {
	return &Environment{
		outer: make(map[string]*Cell),
		local: make(map[string]*Cell),
	}
}

// Copy derives the environment for a nested evaluation: the child's
// outer mapping holds handles to every cell visible here (outer plus
// local), and its local mapping starts empty. Writes through shared
// handles are visible to every scope holding them; a Define in the
// child shadows without touching the parent's cell.
func (e *Environment) Copy() *Environment {
	child := &Environment{
		outer: make(map[string]*Cell, len(e.outer)+len(e.local)),
		local: make(map[string]*Cell),
	}
	for name, cell := range e.outer {
		child.outer[name] = cell
	}
	for name, cell := range e.local {
		child.outer[name] = cell
	}
	return child
}

// Define binds name to a cell in the local mapping. An existing local
// cell is reused (its content overwritten); otherwise a fresh cell is
// created, shadowing any outer cell of the same name.
func (e *Environment) Define(name string, value Value) *Cell {
	if cell, ok := e.local[name]; ok {
		cell.Value = value
		return cell
	}
	cell := NewCell(name, value)
	e.local[name] = cell
	return cell
}

// Resolve finds the cell for name, local first, then outer.
func (e *Environment) Resolve(name string) (*Cell, bool) {
	if cell, ok := e.local[name]; ok {
		return cell, true
	}
	if cell, ok := e.outer[name]; ok {
		return cell, true
	}
	return nil, false
}

// Assign writes through the shared cell for name. It reports false when
// the name resolves to no cell.
func (e *Environment) Assign(name string, value Value) bool {
	cell, ok := e.Resolve(name)
	if !ok {
		return false
	}
	cell.Value = value
	return true
}

// Get returns the current value of the cell for name.
func (e *Environment) Get(name string) (Value, bool) {
	cell, ok := e.Resolve(name)
	if !ok {
		return nil, false
	}
	return cell.Value, true
}

// Remove drops a local binding. Used by the for loop, whose counter
// cell lives in the caller's frame and must not leak past the loop.
func (e *Environment) Remove(name string) {
	delete(e.local, name)
}

// Keys returns every visible name in sorted order (locals shadow outers).
func (e *Environment) Keys() []string {
	seen := make(map[string]struct{}, len(e.outer)+len(e.local))
	for name := range e.outer {
		seen[name] = struct{}{}
	}
	for name := range e.local {
		seen[name] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for name := range seen {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deterministic copy of the visible bindings,
// useful for inspecting the root environment after a run.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.outer)+len(e.local))
	for name, cell := range e.outer {
		out[name] = cell.Value
	}
	for name, cell := range e.local {
		out[name] = cell.Value
	}
	return out
}
