package content

// NodeType is the closed tag set for content nodes. It drives node color and
// default rendering weight.
type NodeType string

const (
	TypeHub      NodeType = "hub"
	TypeProject  NodeType = "project"
	TypeSkill    NodeType = "skill"
	TypeBlog     NodeType = "blog"
	TypeNote     NodeType = "note"
	TypeResource NodeType = "resource"
	TypeHobby    NodeType = "hobby"
	TypeDataset  NodeType = "dataset"
)

// NormalizeType maps legacy type tags onto the current set. The first
// generation of the site used "about" for what is now "note".
func NormalizeType(t string) NodeType {
	if t == "about" {
		return TypeNote
	}
	return NodeType(t)
}

// Cluster determines which fixed spatial anchor a node is attracted toward
// during layout.
type Cluster string

const (
	ClusterCore       Cluster = "core"
	ClusterCareer     Cluster = "career"
	ClusterLibrary    Cluster = "library"
	ClusterPlayground Cluster = "playground"
	ClusterLife       Cluster = "life"
)

// Meta is the optional metadata bag on a node. Every field is independently
// optional; an absent field suppresses the corresponding UI element.
type Meta struct {
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Link        string   `json:"link,omitempty"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Node is a graph vertex: one piece of content.
//
// Layout coordinates are deliberately not part of this type. The layout
// engine keeps positions in its own side table keyed by node ID, so node
// identity and equality stay purely about content.
type Node struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       NodeType `json:"type"`
	Cluster    Cluster  `json:"cluster"`
	Visibility Tier     `json:"visibility"`
	Val        float64  `json:"val"`
	Content    string   `json:"content,omitempty"`
	Meta       *Meta    `json:"meta,omitempty"`
}

// Edge is an undirected connection between two node IDs. Identity is the
// (source, target) pair; {a,b} and {b,a} are the same edge.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is a renderable node/edge set. Both slices preserve insertion order,
// which keeps assembly deterministic for rendering and tests.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
}

// NodeByID returns the node with the given ID, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// HasDanglingEdges reports whether any edge references a node that is not
// present in the graph's node set.
func (g *Graph) HasDanglingEdges() bool {
	ids := make(map[string]struct{}, len(g.Nodes))
	for i := range g.Nodes {
		ids[g.Nodes[i].ID] = struct{}{}
	}
	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			return true
		}
		if _, ok := ids[l.Target]; !ok {
			return true
		}
	}
	return false
}
