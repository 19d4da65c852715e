// Command hexweave enumerates a hex-prism-stack lattice, weaves it into a
// Hamiltonian cycle, and prints the resulting vertex-id tour.
//
// Usage:
//
//	hexweave -maxsum 5 [-radius 3] [-verify]
//
// On success the tour is printed as space-separated vertex ids to stdout.
// Any enumeration, weaving, or verification failure is printed to stderr and
// exits with status 1.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hexweave/lattice"
	"github.com/katalvlaran/hexweave/tourcheck"
	"github.com/katalvlaran/hexweave/weave"
)

func main() {
	maxSum := flag.Int("maxsum", 5, "maximum |x|+|y|+|z| a lattice vertex may have")
	radius := flag.Int("radius", 0, "discrete-ball radius cutoff; 0 means unbounded")
	verify := flag.Bool("verify", false, "run tourcheck.Check on the resulting tour before printing it")
	flag.Parse()

	tour, err := run(*maxSum, *radius, *verify)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(tourToString(tour))
}

func run(maxSum, radius int, verify bool) (weave.Tour, error) {
	table, err := lattice.Build(lattice.Bound{MaxSum: maxSum, Radius: radius})
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	verts, viMap, adj := table.Vertices, table.ViMap, table.Adjacency

	zAdj, zOrder, err := weave.Shrink(verts, adj)
	if err != nil {
		return nil, fmt.Errorf("shrink: %w", err)
	}

	tour, err := weave.Weave(adj, viMap, verts, zAdj, zOrder, maxSum)
	if err != nil {
		return nil, fmt.Errorf("weave: %w", err)
	}

	if verify {
		report := tourcheck.Check(tour, adj, verts)
		if !report.Valid {
			return nil, fmt.Errorf("verify: tour failed validation: %+v", report)
		}
	}

	return tour, nil
}

func tourToString(tour weave.Tour) string {
	ids := make([]string, len(tour))
	for i, id := range tour {
		ids[i] = strconv.Itoa(id)
	}
	return strings.Join(ids, " ")
}
