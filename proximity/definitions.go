// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proximity

import (
	"fmt"
	"io"
	"strings"

	"github.com/p3tools/kmerdb/internal/tabio"
)

// A DefError reports a malformed row in a cluster-definition table.
type DefError struct {
	Line int
	Row  []string
}

func (e *DefError) Error() string {
	return fmt.Sprintf("proximity: malformed cluster definition at line %d: %q", e.Line, e.Row)
}

// Definitions maps member identifiers to the key of the cluster
// defining them, built from a cluster-definition table.
type Definitions struct {
	keyOf map[string]string
}

// ReadDefinitions builds a Definitions lookup from a tab-delimited
// table whose first column is the cluster key and whose last column is
// the delim-joined member identifier list. If a member appears in more
// than one cluster the first definition wins.
func ReadDefinitions(src io.Reader, delim string, header bool) (*Definitions, error) {
	r := tabio.NewReader(src, header)
	defs := &Definitions{keyOf: make(map[string]string)}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 || row[0] == "" {
			return nil, &DefError{Line: r.Line(), Row: row}
		}
		key := row[0]
		for _, m := range strings.Split(row[len(row)-1], delim) {
			if m == "" {
				continue
			}
			if _, ok := defs.keyOf[m]; !ok {
				defs.keyOf[m] = key
			}
		}
	}
	return defs, nil
}

// KeyOf returns the cluster key defining a member identifier.
func (d *Definitions) KeyOf(member string) (string, bool) {
	key, ok := d.keyOf[member]
	return key, ok
}

// Len returns the number of defined member identifiers.
func (d *Definitions) Len() int { return len(d.keyOf) }
