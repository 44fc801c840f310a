package graphml

// scope says whether an attribute declaration applies to nodes or edges.
type scope uint8

const (
	scopeNode scope = iota
	scopeEdge
)

func (s scope) String() string {
	if s == scopeEdge {
		return "edge"
	}
	return "node"
}

// attrDecl identifies one attribute declaration: equality is on the
// (name, scope) pair.
type attrDecl struct {
	name  string
	scope scope
}

// registry deduplicates attribute declarations discovered while the
// graph body streams. Entries keep first-discovery order so that key
// emission is deterministic. The registry is scoped to a single Encode
// call and never shared.
type registry struct {
	seen    map[attrDecl]struct{}
	entries []attrDecl
}

func newRegistry() *registry {
	return &registry{seen: make(map[attrDecl]struct{})}
}

// add records the pair if it has not been seen before.
func (r *registry) add(name string, s scope) {
	decl := attrDecl{name: name, scope: s}
	if _, ok := r.seen[decl]; ok {
		return
	}
	r.seen[decl] = struct{}{}
	r.entries = append(r.entries, decl)
}
