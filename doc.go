// Package starlabel computes edge-irregular k-labelings for parametric
// star-like graph families and verifies the irregularity property.
//
// 🚀 What is starlabel?
//
//	A small, deterministic library that brings together:
//		• Topology builders: amalgamated star, homogeneous S(n,3), snowflake
//		• Labeling strategies: greedy minimal-weight, closed-form residue cases,
//		  and the legacy clamped-linear rule (gated as unsafe)
//		• Edge-weight derivation: weight(u,v) = label(u) + label(v)
//		• Structured verification: pairwise-distinct weights, max weight,
//		  descriptive complexity figure
//
// ✨ Why choose starlabel?
//
//   - Deterministic – same parameters always produce the same graph,
//     labels, and weights
//   - Honest results – verification is a returned value, never a print
//   - Sentinel errors – branch with errors.Is, no panics at runtime
//
// Under the hood, everything is organized in flat subpackages:
//
//	core/     — Graph over int vertex ids, label & weight mappings
//	builder/  — deterministic family constructors
//	labeling/ — per-family labeling strategies + available-weight pool
//	weight/   — weight derivation and uniqueness verification
//	probe/    — feasibility probing under a wall-clock budget
//	report/   — human-readable text records for a completed run
//
// Quick ASCII example (amalgamated star, n=3 branches, one leaf each):
//
//	    4   5   6
//	    │   │   │
//	    1───0───2
//	        │
//	        3
//
//	vertex 0 is always the center; branch ids precede leaf ids.
//
//	go get github.com/katalvlaran/starlabel
package starlabel
