package content

// Tier is an ordered visibility gate. A node is visible at a requested tier
// iff its own tier rank is less than or equal to the requested rank.
type Tier string

const (
	TierProfessional Tier = "professional"
	TierExplorer     Tier = "explorer"
	TierGodMode      Tier = "god_mode"
)

// Tiers lists all tiers in rank order.
var Tiers = []Tier{TierProfessional, TierExplorer, TierGodMode}

// Rank returns the tier's position in the visibility order:
// professional=0, explorer=1, god_mode=2. Unknown tiers rank highest so bad
// data never leaks into a lower tier.
func (t Tier) Rank() int {
	switch t {
	case TierProfessional:
		return 0
	case TierExplorer:
		return 1
	case TierGodMode:
		return 2
	default:
		return 2
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierProfessional, TierExplorer, TierGodMode:
		return true
	}
	return false
}

// VisibleAt reports whether content with visibility t may be shown when the
// requested tier is req.
func (t Tier) VisibleAt(req Tier) bool {
	return t.Rank() <= req.Rank()
}

// FilterGraph projects a graph down to what the requested tier may see:
// nodes whose visibility rank is within the tier, then only edges whose both
// endpoints survived. The result never contains a dangling edge.
func FilterGraph(g *Graph, tier Tier) *Graph {
	out := &Graph{}
	kept := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Visibility.VisibleAt(tier) {
			out.Nodes = append(out.Nodes, n)
			kept[n.ID] = struct{}{}
		}
	}
	for _, l := range g.Links {
		if _, ok := kept[l.Source]; !ok {
			continue
		}
		if _, ok := kept[l.Target]; !ok {
			continue
		}
		out.Links = append(out.Links, l)
	}
	return out
}
