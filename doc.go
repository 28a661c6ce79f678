// Package phylik scores multiple sequence alignments on phylogenetic trees —
// from continuous-time substitution models to indel transition matrices and
// bounded model-fitting loops.
//
// 🚀 What is phylik?
//
//	A deterministic, allocation-conscious library that brings together:
//		• Tree pruning: Felsenstein's postorder likelihood with underflow rescaling
//		• Substitution models: generator matrices, mixtures, branch-length caches
//		• Indel models: 3-state transition matrices from an integrated ODE system
//		• ODE solvers: fixed-step RK4 and adaptive Dormand–Prince RK5(4)
//		• Optimization: bounded-iteration best-state tracking for parameter fits
//		• Model I/O: Historian-format JSON model files
//
// ✨ Why choose phylik?
//
//   - Deterministic – pure functions, no shared mutable state, no randomness
//   - Numerically safe – mandatory rescaling, degeneracy floors, no NaN/Inf leaks
//   - Flat-array trees – preorder index arrays, single-pass postorder processing
//   - Parallel-ready – alignment columns fan out across cores transparently
//
// Under the hood, everything is organized under focused subpackages:
//
//	ode/       — Runge–Kutta integrators (fixed-step RK4, adaptive Dopri5)
//	indel/     — 3-state indel transition matrices over branch lengths
//	subst/     — substitution models, matrix exponentials, discretized caches
//	prune/     — alignment/tree containers, validation, padding, pruning engine
//	optimize/  — bounded iterative optimizer with best-state tracking
//	historian/ — Historian JSON model-file codec
//	score/     — combined substitution + indel log-likelihood totals
//
// Quick sketch of the data flow:
//
//	alignment + tree ─┬─▶ subst (per-branch matrices) ─▶ prune ─▶ substitution log-like
//	                  └─▶ indel (per-branch matrices) ─▶ score ─▶ indel log-like
//
// Dive into score/ for the end-to-end entry point, or each package's doc.go
// for contracts, complexity notes and worked examples.
//
//	go get github.com/katalvlaran/phylik
package phylik
