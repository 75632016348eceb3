// Package inspect implements the visualization hook's reference consumer
// (component I): spec.md §6 leaves the hook itself — an introspectable
// name and incident-port list per node — as an external contract.
// Visualizer is the reference consumer, grounded in the teacher's
// internal/production.DefaultVisualizer (DOT/JSON export over a node
// graph). Server adds a tiny websocket-pushed live view rendered through
// blackfriday, grounded in Comcast-sheens' cmd/mservice websocket
// broadcast pattern and tools/spec-html.go's markdown rendering.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PortKind classifies one of a node's incident ports for display.
type PortKind int

const (
	EventSourcePort PortKind = iota
	EventSinkPort
	StateSourcePort
	StateSinkPort
)

func (k PortKind) String() string {
	switch k {
	case EventSourcePort:
		return "event_source"
	case EventSinkPort:
		return "event_sink"
	case StateSourcePort:
		return "state_source"
	case StateSinkPort:
		return "state_sink"
	default:
		return "unknown"
	}
}

// PortInfo describes one incident port, satisfying spec.md §6's
// "introspectable name and a list of incident ports" per node.
type PortInfo struct {
	Name string   `json:"name"`
	Kind PortKind `json:"kind"`
}

// NodeInfo is the hook's per-node introspection record: a name and its
// incident ports. A region ID, if the node is region-aware, lets
// Visualizer color cross-region edges distinctly from same-region ones.
type NodeInfo struct {
	Name   string     `json:"name"`
	Region string     `json:"region,omitempty"`
	Ports  []PortInfo `json:"ports"`
}

// Edge is a directed connection between two named ports, supplied by the
// caller alongside the node list — the hook exposes ports per node, not
// the wiring between them, so the caller (whoever ran Connect*) must
// record edges itself.
type Edge struct {
	FromNode string `json:"from_node"`
	FromPort string `json:"from_port"`
	ToNode   string `json:"to_node"`
	ToPort   string `json:"to_port"`
	Buffered bool   `json:"buffered"`
}

// Graph is the full introspected wiring Visualizer renders.
type Graph struct {
	Nodes []NodeInfo `json:"nodes"`
	Edges []Edge     `json:"edges"`
}

// Visualizer exports a Graph as Graphviz DOT or JSON.
type Visualizer struct{}

// ExportDOT generates Graphviz DOT source for g, clustering nodes by
// region the way the teacher's DefaultVisualizer clusters compound
// states.
func (Visualizer) ExportDOT(g Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph FlexcoreGraph {\n  rankdir=LR;\n  node [shape=record, fontsize=10];\n  edge [fontsize=9];\n")

	byRegion := make(map[string][]NodeInfo)
	for _, n := range g.Nodes {
		byRegion[n.Region] = append(byRegion[n.Region], n)
	}

	for region, nodes := range byRegion {
		if region != "" {
			fmt.Fprintf(&buf, "  subgraph cluster_%s {\n    label=\"region: %s\";\n", region, region)
		}
		for _, n := range nodes {
			fmt.Fprintf(&buf, "    %q [label=\"%s\"];\n", n.Name, portLabel(n))
		}
		if region != "" {
			buf.WriteString("  }\n")
		}
	}

	for _, e := range g.Edges {
		style := ""
		if e.Buffered {
			style = " [style=dashed, label=\"buffered\"]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.FromNode, e.ToNode, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func portLabel(n NodeInfo) string {
	label := n.Name
	for _, p := range n.Ports {
		label += fmt.Sprintf("|%s: %s", p.Name, p.Kind)
	}
	return label
}

// ExportJSON serializes g to indented JSON.
func (Visualizer) ExportJSON(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
