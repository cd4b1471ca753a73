// SPDX-License-Identifier: MIT

package combin

import (
	"fmt"
	"strings"
)

// Partition is a weakly decreasing sequence of positive integers.
// The empty partition is the valid partition of 0.
type Partition []int

// ParsePartition validates parts and returns them as a Partition.
func ParsePartition(parts ...int) (Partition, error) {
	for i, p := range parts {
		if p <= 0 {
			return nil, fmt.Errorf("%w: part %d is %d", ErrInvalidPartition, i, p)
		}
		if i > 0 && parts[i-1] < p {
			return nil, fmt.Errorf("%w: parts not weakly decreasing", ErrInvalidPartition)
		}
	}
	out := make(Partition, len(parts))
	copy(out, parts)

	return out, nil
}

// Size returns the sum of the parts.
func (p Partition) Size() int {
	n := 0
	for _, part := range p {
		n += part
	}

	return n
}

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// Conjugate returns the transposed partition.
func (p Partition) Conjugate() Partition {
	if len(p) == 0 {
		return nil
	}
	out := make(Partition, p[0])
	for i := range out {
		for _, part := range p {
			if part > i {
				out[i]++
			}
		}
	}

	return out
}

// InitialTableau fills the shape with 1..n row by row; this is the standard
// tableau of minimal cocharge.
func (p Partition) InitialTableau() Tableau {
	t := make(Tableau, len(p))
	e := 1
	for i, part := range p {
		t[i] = make([]int, part)
		for j := range t[i] {
			t[i][j] = e
			e++
		}
	}

	return t
}

// String renders the partition as "[3,2,1]".
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, part := range p {
		parts[i] = fmt.Sprintf("%d", part)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Partitions enumerates all partitions of n in reverse lexicographic order:
// [n], [n−1,1], ..., [1,...,1]. Partitions(0) yields the empty partition.
func Partitions(n int) []Partition {
	return PartitionsMaxLength(n, n)
}

// PartitionsMaxLength enumerates the partitions of n with at most maxLen
// parts, in reverse lexicographic order.
func PartitionsMaxLength(n, maxLen int) []Partition {
	if n < 0 {
		return nil
	}
	var out []Partition
	var rec func(rest, maxPart, room int, prefix Partition)
	rec = func(rest, maxPart, room int, prefix Partition) {
		if rest == 0 {
			out = append(out, append(Partition(nil), prefix...))

			return
		}
		if room == 0 {
			return
		}
		for part := min(rest, maxPart); part >= 1; part-- {
			rec(rest-part, part, room-1, append(prefix, part))
		}
	}
	rec(n, n, maxLen, nil)

	return out
}
