// Package hexweave weaves a Hamiltonian cycle over the vertices of a
// hex-prism-stack lattice: the odd-coordinate integer points (x,y,z) with
// |x|+|y|+|z| bounded and a discrete ball radius applied, connected by
// unit-axis steps of length 2.
//
// 🧵 What is hexweave?
//
//	A small, thread-safety-conscious, nearly-zero-dependency library that
//	brings together:
//
//	  • lattice/    — enumerate the hex-prism-stack vertex set and its adjacency
//	  • weave/      — the weaving algorithm: spin, color, loom, reflect, stitch
//	  • tourcheck/  — validate a finished tour against the adjacency it came from
//	  • cmd/hexweave — a CLI that wires the three together
//
// ✨ Why hexweave?
//
//   - Deterministic — no RNG, no time-based branching; identical inputs
//     always produce identical tours.
//   - Pure Go — no cgo, no hidden dependencies beyond testify for tests.
//   - Single-purpose — weave knows nothing about how vertices were
//     enumerated or how its output will be checked; lattice and tourcheck
//     know nothing about the weaving algorithm itself.
//
// Dive into each subpackage's doc.go for algorithmic detail.
//
//	go get github.com/katalvlaran/hexweave/weave
package hexweave
