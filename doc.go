// Package rootfind is a compact toolbox of classical root-finding
// algorithms for scalar and vector nonlinear equations: supply a
// function (and optionally its derivative or Jacobian) and get back an
// approximate root together with full diagnostic metadata.
//
// 🚀 What is rootfind?
//
//	A small, synchronous, pure-function library that brings together:
//		• Bisection:      bracket-halving, guaranteed linear convergence
//		• Secant:         derivative-free, golden-ratio superlinear
//		• Newton–Raphson: derivative-based, quadratic near a simple root
//		• Brent:          hybrid IQI/secant/bisection, robust AND fast
//		• Newton systems: multivariate Newton with finite-difference
//		                  Jacobian fallback and Armijo backtracking
//		• Convergence:    empirical order estimation from iterate histories
//
// ✨ Why choose rootfind?
//
//   - Uniform results – every solver returns an immutable record with
//     the root, iteration count, convergence flag and iterate history
//   - Hard vs. soft failures – malformed problems error out before the
//     first iteration; non-convergence is an inspectable result, never
//     an error
//   - Thread-friendly – no global state; concurrent calls are safe as
//     long as the supplied evaluators are
//
// Everything is organized under per-method subpackages:
//
//	bisection/   – bracket-halving scalar solver
//	secant/      – two-point derivative-free scalar solver
//	newton/      – derivative-based scalar solver
//	brent/       – hybrid bracket-guaranteed scalar solver
//	jacobian/    – finite-difference Jacobian estimation
//	newtonsys/   – multivariate Newton solver (the heavy lifter)
//	convergence/ – convergence-order estimation
//	solver/      – typed dispatch façade over the scalar methods
//
// A demonstration CLI lives under cmd/rootfind: it solves the classic
// x²−2 problem with any method, benchmarks all of them side by side,
// and renders a semilog convergence plot.
//
//	go get github.com/dkoval/rootfind
package rootfind
