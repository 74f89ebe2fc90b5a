package ddl

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes an ordered column list. Two lists with the same names in
// the same order share a fingerprint; any reordering changes it. Names are
// NUL-separated so {"ab","c"} and {"a","bc"} differ.
func Fingerprint(names []string) string {
	h := xxh3.New()
	for _, n := range names {
		_, _ = h.Write([]byte(n))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
