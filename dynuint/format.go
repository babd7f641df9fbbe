// SPDX-License-Identifier: MIT

package dynuint

import (
	"fmt"
	"strconv"
	"strings"
)

var _ fmt.Stringer = Uint{}

// Binary renders x in base 2 without leading zeros; zero renders as "0".
func (x Uint) Binary() string {
	n := len(x.limbs)
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(x.BitLen())
	sb.WriteString(strconv.FormatUint(x.limbs[n-1], 2))
	for i := n - 2; i >= 0; i-- {
		s := strconv.FormatUint(x.limbs[i], 2)
		sb.WriteString(strings.Repeat("0", limbBits-len(s)))
		sb.WriteString(s)
	}

	return sb.String()
}

// String implements fmt.Stringer using the binary rendering, which is how
// packed weights are usually inspected field by field.
func (x Uint) String() string { return x.Binary() }
