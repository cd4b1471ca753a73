// SPDX-License-Identifier: MIT

// Package charcache persists computed harmonic characters on disk, one YAML
// file per partition. Characters are expensive (minutes for moderate n), so
// batch drivers reuse earlier runs across processes.
//
// The store is an explicit object owned by the caller; nothing in the
// computational packages touches the filesystem. Concurrent readers are
// fine; concurrent writers of the same partition last-write-win, which is
// safe because a character is a pure function of its partition.
package charcache
