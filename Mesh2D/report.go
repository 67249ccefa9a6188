package Mesh2D

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (m *Mesh) Print() {
	fmt.Printf("[%d x %d]\t\t= Width x Height\n", m.width, m.height)
	fmt.Printf("[%v]\t\t\t= Periodic\n", m.isPeriodic)
	fmt.Printf("[%d]\t\t\t= Number of Nodes\n", m.nNodes)
	fmt.Printf("[%d]\t\t\t= Number of Elements\n", m.nElements)
}

// Dump writes every node and element in index order. Absent neighbours print as "-".
func (m *Mesh) Dump(w io.Writer) (err error) {
	var (
		bw = bufio.NewWriter(w)
		nb = make([]string, 4)
	)
	fmt.Fprintf(bw, "Mesh %d x %d, periodic = %v, nNodes = %d, nElements = %d\n",
		m.width, m.height, m.isPeriodic, m.nNodes, m.nElements)
	fmt.Fprintf(bw, "Nodes:\n")
	for i, n := range m.nodes {
		for d, node := range n.Neighbours {
			if node == m.nNodes {
				nb[d] = "-"
			} else {
				nb[d] = strconv.Itoa(node)
			}
		}
		fmt.Fprintf(bw, "%4d (%g,%g) boundary = %-5v neighbours = [%s] elements = %v\n",
			i, n.Coord.X, n.Coord.Y, n.IsDomainBoundary, strings.Join(nb, " "),
			n.Elements[:n.NElements])
	}
	fmt.Fprintf(bw, "Elements:\n")
	for k, el := range m.elements {
		fmt.Fprintf(bw, "%4d centre = (%.6f,%.6f) nodes = %v gauss =",
			k, el.Coord.X, el.Coord.Y, el.Nodes)
		for _, gp := range el.GaussPoints {
			fmt.Fprintf(bw, " (%.6f,%.6f)", gp.X, gp.Y)
		}
		fmt.Fprintf(bw, "\n")
	}
	return bw.Flush()
}
