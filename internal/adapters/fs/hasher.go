package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints command lines so identical invocations can be recognized in the history.
type Hasher struct {
	locator *Locator
}

// NewHasher creates a new Hasher.
func NewHasher(locator *Locator) *Hasher {
	return &Hasher{locator: locator}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint computes a single hash over the arguments, environment and working
// directory of cl, plus the content of its classpath entry.
func (h *Hasher) Fingerprint(cl *domain.CommandLine) (string, error) {
	hasher := xxhash.New()

	for _, arg := range cl.Args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	h.hashEnvironment(cl.Env, hasher)

	_, _ = hasher.WriteString(cl.Dir)
	_, _ = hasher.Write([]byte{0})

	if err := h.hashClasspath(cl.Args, hasher); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashEnvironment hashes environment variables in a deterministic order.
func (h *Hasher) hashEnvironment(env map[string]string, hasher *xxhash.Digest) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashClasspath mixes in the content hash of the file following -cp, when it exists.
func (h *Hasher) hashClasspath(args []string, mainHasher io.Writer) error {
	for i := 0; i+1 < len(args); i++ {
		if args[i] != "-cp" {
			continue
		}
		path := args[i+1]
		if !h.locator.IsFile(path) {
			return nil
		}
		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return err
		}
		if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
			return zerr.Wrap(err, "failed to write hash to digest")
		}
		return nil
	}
	return nil
}
