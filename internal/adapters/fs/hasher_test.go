package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/maven3/internal/adapters/fs"
	"go.trai.ch/maven3/internal/core/domain"
)

func TestHasher_Fingerprint(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "plexus-classworlds-2.4.jar")
	require.NoError(t, os.WriteFile(jar, []byte("v1"), 0o600))

	h := fs.NewHasher(fs.NewLocator())
	cl := &domain.CommandLine{
		Args: []string{"java", "-cp", jar, "-f", "pom.xml"},
		Env:  map[string]string{"A": "1", "B": "2"},
		Dir:  "/ws",
	}

	first, err := h.Fingerprint(cl)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	again, err := h.Fingerprint(&domain.CommandLine{
		Args: cl.Args,
		Env:  map[string]string{"B": "2", "A": "1"},
		Dir:  "/ws",
	})
	require.NoError(t, err)
	assert.Equal(t, first, again, "fingerprint must not depend on map order")

	otherDir, err := h.Fingerprint(&domain.CommandLine{Args: cl.Args, Env: cl.Env, Dir: "/other"})
	require.NoError(t, err)
	assert.NotEqual(t, first, otherDir)

	require.NoError(t, os.WriteFile(jar, []byte("v2"), 0o600))
	changedJar, err := h.Fingerprint(cl)
	require.NoError(t, err)
	assert.NotEqual(t, first, changedJar, "classpath content is part of the fingerprint")
}

func TestHasher_Fingerprint_MissingClasspath(t *testing.T) {
	h := fs.NewHasher(fs.NewLocator())
	_, err := h.Fingerprint(&domain.CommandLine{Args: []string{"java", "-cp", "/does/not/exist.jar"}})
	require.NoError(t, err)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o600))

	h := fs.NewHasher(fs.NewLocator())
	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	_, err = h.ComputeFileHash(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
