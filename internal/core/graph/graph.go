// Package graph provides the canvas snapshot container
package graph

// Snapshot is the serialized form of a canvas graph as handed over by
// the editor: a flat node list plus a flat edge list. The validation
// engine never mutates a snapshot.
type Snapshot struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name,omitempty"`
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// Triggers returns the entry-point nodes in input order.
func (s *Snapshot) Triggers() []*Node {
	var out []*Node
	for _, n := range s.Nodes {
		if n != nil && n.Kind.IsTrigger() {
			out = append(out, n)
		}
	}
	return out
}
