package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFindSourceFiles_ExtensionAllowList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	keep := []string{
		writeFile(t, root, "a.c", ""),
		writeFile(t, root, "b.cpp", ""),
		writeFile(t, root, "inc/c.h", ""),
		writeFile(t, root, "inc/d.HPP", ""), // extension match is case-insensitive
	}
	writeFile(t, root, "notes.txt", "")
	writeFile(t, root, "gen.py", "")
	writeFile(t, root, "Makefile", "")

	files, err := FindSourceFiles(context.Background(), root)
	require.NoError(t, err)
	assert.ElementsMatch(t, keep, files)
}

func TestFindSourceFiles_PrunesExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	visible := writeFile(t, root, "src/main.c", "")
	writeFile(t, root, ".git/hook.c", "")
	writeFile(t, root, "build/out.c", "")
	writeFile(t, root, "generated/ids.h", "")
	writeFile(t, root, "src/__pycache__/junk.c", "")

	files, err := FindSourceFiles(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, files)
}

func TestFindSourceFiles_RootIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := writeFile(t, root, "only.c", "")

	files, err := FindSourceFiles(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindSourceFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindSourceFiles(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestFindSourceFiles_SkipsUnreadableSubtree(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	visible := writeFile(t, root, "src/main.c", "")
	locked := writeFile(t, root, "locked/hidden.c", "")
	lockedDir := filepath.Dir(locked)
	require.NoError(t, os.Chmod(lockedDir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(lockedDir, 0o750) })

	files, err := FindSourceFiles(context.Background(), root)
	require.NoError(t, err, "an unreadable subtree must be skipped, not fatal")
	assert.Equal(t, []string{visible}, files)
}

func TestScanRoot_SkipsUnreadableFile(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, root, "ok.c", "RTI_VLAN_REGISTER_STATIC(&a, OK);\n")
	locked := writeFile(t, root, "locked.c", "RTI_VLAN_REGISTER_STATIC(&b, HIDDEN);\n")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o600) })

	set, err := New(DefaultMatcher()).ScanRoot(context.Background(), root)
	require.NoError(t, err, "an unreadable file must be skipped, not fatal")
	assert.Equal(t, []string{"OK"}, set.Names())
}

func TestScanRoot_RecordsOccurrencesInOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// WalkDir visits lexically: alpha.c before beta.c before zeta.c.
	alphaPath := writeFile(t, root, "alpha.c",
		"RTI_VLAN_REGISTER_STATIC(&a, SECOND);\nRTI_VLAN_REGISTER_STATIC(&b, FIRST);\n")
	betaPath := writeFile(t, root, "beta.c",
		"RTI_VLAN_REGISTER_STATIC(&c, THIRD);\n")
	writeFile(t, root, "zeta.c",
		"RTI_VLAN_REGISTER_STATIC(&d, FIRST);\n")

	set, err := New(DefaultMatcher()).ScanRoot(context.Background(), root)
	require.NoError(t, err)

	// Order within a file, then file order, define discovery order.
	assert.Equal(t, []string{"SECOND", "FIRST", "THIRD"}, set.Names())
	assert.Equal(t, []string{alphaPath}, set.Occurrences("SECOND"))
	assert.Equal(t, []string{betaPath}, set.Occurrences("THIRD"))
	// FIRST occurs twice, once per file.
	require.Len(t, set.Occurrences("FIRST"), 2)
}

func TestScanRoot_IgnoresDefinitionsAndExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "inc/rti_vlan.h",
		"#define RTI_VLAN_REGISTER_STATIC(ADDR, NAME) \\\n    const int NAME = 0\n")
	writeFile(t, root, "build/stale.c",
		"RTI_VLAN_REGISTER_STATIC(&x, STALE);\n")

	set, err := New(DefaultMatcher()).ScanRoot(context.Background(), root)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestScanRoot_EmptyTree(t *testing.T) {
	t.Parallel()

	set, err := New(DefaultMatcher()).ScanRoot(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}
