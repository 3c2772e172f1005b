package layout

import "math"

// applyLinkForce pulls linked nodes toward linkDistance apart.
func (e *Engine) applyLinkForce() {
	for _, l := range e.links {
		sp := e.pos[e.graph.Nodes[l[0]].ID]
		tp := e.pos[e.graph.Nodes[l[1]].ID]

		dx := tp.X + tp.VX - sp.X - sp.VX
		dy := tp.Y + tp.VY - sp.Y - sp.VY
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist, dx = 1e-6, 1e-6
		}

		k := (dist - linkDistance) / dist * linkStrength * e.alpha
		tp.VX -= dx * k * 0.5
		tp.VY -= dy * k * 0.5
		sp.VX += dx * k * 0.5
		sp.VY += dy * k * 0.5
	}
}

// applyChargeForce repels every node pair. Quadratic in node count, which is
// fine at garden scale (a few hundred nodes).
func (e *Engine) applyChargeForce() {
	n := len(e.graph.Nodes)
	for i := 0; i < n; i++ {
		pi := e.pos[e.graph.Nodes[i].ID]
		for j := i + 1; j < n; j++ {
			pj := e.pos[e.graph.Nodes[j].ID]

			dx := pj.X - pi.X
			dy := pj.Y - pi.Y
			d2 := dx*dx + dy*dy
			if d2 == 0 {
				d2, dx = 1e-6, 1e-3
			}

			k := chargeStrength * e.alpha / d2
			pj.VX += dx * k
			pj.VY += dy * k
			pi.VX -= dx * k
			pi.VY -= dy * k
		}
	}
}

// applyAnchorForce attracts each node toward its cluster anchor. Nodes with
// an unknown cluster are left to the other forces.
func (e *Engine) applyAnchorForce() {
	for i := range e.graph.Nodes {
		anchor, ok := ClusterAnchors[e.graph.Nodes[i].Cluster]
		if !ok {
			continue
		}
		p := e.pos[e.graph.Nodes[i].ID]
		p.VX += (anchor.X - p.X) * AnchorStrength * e.alpha
		p.VY += (anchor.Y - p.Y) * AnchorStrength * e.alpha
	}
}

// applyCollisionForce pushes overlapping nodes apart so labels stay legible.
// Radius scales with sqrt(val) so high-value nodes claim more space.
func (e *Engine) applyCollisionForce() {
	n := len(e.graph.Nodes)
	for i := 0; i < n; i++ {
		pi := e.pos[e.graph.Nodes[i].ID]
		for j := i + 1; j < n; j++ {
			pj := e.pos[e.graph.Nodes[j].ID]

			dx := pj.X + pj.VX - pi.X - pi.VX
			dy := pj.Y + pj.VY - pi.Y - pi.VY
			dist := math.Hypot(dx, dy)
			min := e.radii[i] + e.radii[j]
			if dist >= min {
				continue
			}
			if dist == 0 {
				dist, dx = 1e-6, 1e-6
			}

			overlap := (min - dist) / dist * 0.5
			pj.VX += dx * overlap
			pj.VY += dy * overlap
			pi.VX -= dx * overlap
			pi.VY -= dy * overlap
		}
	}
}
