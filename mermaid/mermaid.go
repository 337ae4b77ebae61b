// Package mermaid renders graphs, and in particular the search trees
// left behind by package astar, as Mermaid flowcharts. Mermaid is a
// text-based diagramming tool that generates diagrams from
// markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"
	"strings"
)

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// Graph defines what is required of a graph to be marshaled
// to Mermaid format.
type Graph[Node comparable] interface {
	// AllNodes returns all nodes in the graph, in the order
	// they should be written.
	AllNodes() []Node
	// Successors returns the nodes that n has an edge to.
	Successors(n Node) []Node
	// NodeInfo returns metadata about a node, including its ID, display text, and style.
	NodeInfo(n Node) NodeInfo
}

// NodeInfo contains metadata about a graph node for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	// It must not be empty.
	ID string
	// Text is the display text for the node. If empty, ID is used instead.
	Text string
	// Style contains Mermaid style declarations for the node (e.g., "fill:#f9f,stroke:#333").
	Style string
}

// NewGraph creates a Marshaler that writes g as a top-down flowchart.
func NewGraph[Node comparable](g Graph[Node]) Marshaler {
	return &graphImpl[Node]{g}
}

type graphImpl[Node comparable] struct {
	g Graph[Node]
}

func (g *graphImpl[Node]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.g.NodeInfo(n)
		if info.ID == "" {
			return nil, fmt.Errorf("mermaid: node %v has no ID", n)
		}
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[\"%s\"]\n", info.ID, escape(info.Text))
		}
		if info.Style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, info.Style)
		}
		for _, to := range g.g.Successors(n) {
			toID := g.g.NodeInfo(to).ID
			if toID == "" {
				return nil, fmt.Errorf("mermaid: node %v has no ID", to)
			}
			fmt.Fprintf(&buf, "  %s-->%s\n", info.ID, toID)
		}
	}
	return buf.Bytes(), nil
}

var textEscaper = strings.NewReplacer(`"`, "#quot;")

func escape(s string) string {
	return textEscaper.Replace(s)
}
