// SPDX-License-Identifier: MIT

// Package freemod implements a free module over an exact field with an
// arbitrary (comparable) basis-key set, together with the vecmat.Ambient
// capability. It is the simplest ambient space in the repository: elements
// are finite formal linear combinations of basis keys.
//
// freemod is the collaborator of choice for tests and examples — a
// coordinate space K³ is just a module on the keys 0, 1, 2 — and for small
// representation-theoretic computations (group algebras are free modules on
// group elements).
package freemod
