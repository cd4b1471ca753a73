// SPDX-License-Identifier: MIT

// Package subspace implements the graded subspace-closure engine: given
// generator vectors and a family of linear operators carrying degree
// shifts, it computes the smallest subspace containing the generators and
// stable under the operators, one echelon basis per degree bucket.
//
// 🚀 How it works
//
//	Construction seeds one echelon store per generator degree and enqueues
//	a worklist item (vector, target degree, operator) for every accepted
//	generator and every compatible operator shift. Finalize drains the
//	worklist: apply the operator, try to extend the target bucket's basis,
//	and on acceptance re-enqueue the fresh vector against every shift.
//	Rejected vectors schedule no further work, which bounds the closure to
//	the true stable subspace.
//
// Degrees are opaque comparable bucket keys; the caller supplies the
// combination function. A combination returning an error is a pruning
// signal (skip that shift for that vector), never a failure — see
// grading.SumPruneNegative for the canonical policy.
//
// The worklist drains last-in-first-out. Traversal order affects only the
// order operators observe vectors; the per-degree dimensions are
// order-invariant, and only that contract is promised.
//
// Termination is the caller's responsibility: if the degree function never
// prunes and the operator family is not eventually nilpotent on the span,
// Finalize does not return. One Subspace instance is single-threaded and
// must not be shared while draining; independent instances may run in
// parallel freely.
package subspace
