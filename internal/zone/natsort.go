package zone

import (
	"strings"
)

// naturalCompare orders strings so that embedded digit runs compare by
// numeric value: host1 < host2 < host10. Outside digit runs it is plain
// byte comparison, and numerically equal runs with different leading
// zeros fall back to byte comparison for a total order.
func naturalCompare(a, b string) int {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j

			for i < len(a) && isDigit(a[i]) {
				i++
			}

			for j < len(b) && isDigit(b[j]) {
				j++
			}

			da := strings.TrimLeft(a[si:i], "0")
			db := strings.TrimLeft(b[sj:j], "0")

			if len(da) != len(db) {
				if len(da) < len(db) {
					return -1
				}

				return 1
			}

			if c := strings.Compare(da, db); c != 0 {
				return c
			}

			continue
		}

		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}

		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return strings.Compare(a, b)
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
