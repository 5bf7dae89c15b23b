// SPDX-License-Identifier: MIT

package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// hookGrid is a 3×3 grid whose open cells form a hook around (1,1).
const hookGrid = "..#\n.#.\n...\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
