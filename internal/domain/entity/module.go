package entity

// System is a licensed application whose modules are resolved per profile.
type System struct {
	ID   int64
	Name string
	Lifecycle
}

// Module is one node of a system's module hierarchy. ParentID is nil for
// top-level modules. Parent pointers form a strict tree in practice; the
// resolver still guards against cycles from malformed data.
type Module struct {
	ID       int64
	SystemID int64
	ParentID *int64
	Name     string
	Index    int // Display ordering within the same level.
	Visible  bool
	Lifecycle
}

// ModuleNode is one resolved node of a permission tree: the module, the
// action flags the profile holds on it, and its permitted children.
type ModuleNode struct {
	Module   *Module
	Actions  ActionSet
	Children []*ModuleNode
}
