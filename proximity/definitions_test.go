// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proximity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defTable = "cluster_id\tsize\tmembers\n" +
	"CL1\t3\troleA::roleB::roleC\n" +
	"CL2\t2\troleD::roleA\n"

func TestReadDefinitions(t *testing.T) {
	defs, err := ReadDefinitions(strings.NewReader(defTable), "::", true)
	require.NoError(t, err)
	assert.Equal(t, 4, defs.Len())

	key, ok := defs.KeyOf("roleB")
	require.True(t, ok)
	assert.Equal(t, "CL1", key)

	key, ok = defs.KeyOf("roleD")
	require.True(t, ok)
	assert.Equal(t, "CL2", key)

	// First definition wins for members in several clusters.
	key, ok = defs.KeyOf("roleA")
	require.True(t, ok)
	assert.Equal(t, "CL1", key)

	_, ok = defs.KeyOf("roleZ")
	assert.False(t, ok)
}

func TestReadDefinitionsNoHeader(t *testing.T) {
	defs, err := ReadDefinitions(strings.NewReader("CL1\tr1,r2\n"), ",", false)
	require.NoError(t, err)
	assert.Equal(t, 2, defs.Len())
}

func TestReadDefinitionsMalformed(t *testing.T) {
	_, err := ReadDefinitions(strings.NewReader("lonevalue\n"), "::", false)
	require.Error(t, err)
	var derr *DefError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Line)
}
