// internal/writers/replist.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// WriteRepList writes one genome identifier per line, sorted so repeated
// runs produce byte-identical files.
func WriteRepList(w io.Writer, reps map[string]struct{}) error {
	ids := make([]string, 0, len(reps))
	for id := range reps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRepListFile writes the representative list to path.
func WriteRepListFile(path string, reps map[string]struct{}) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRepList(fh, reps); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
