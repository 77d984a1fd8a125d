package javascript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/matzehuels/yarn-completions/pkg/errors"
)

// ManifestFile is the manifest name looked up in the project directory.
const ManifestFile = "package.json"

// Manifest is the subset of package.json used for completion.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ReadManifest reads and decodes dir/package.json.
func ReadManifest(fsys afero.Fs, dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)

	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", path)
	}
	return &m, nil
}

// DependencyNames returns the sorted keys of dependencies.
func (m *Manifest) DependencyNames() []string { return sortedKeys(m.Dependencies) }

// DevDependencyNames returns the sorted keys of devDependencies.
func (m *Manifest) DevDependencyNames() []string { return sortedKeys(m.DevDependencies) }

// ScriptNames returns the sorted keys of scripts.
func (m *Manifest) ScriptNames() []string { return sortedKeys(m.Scripts) }

// RemoveCandidates lists every declared dependency: the dependencies
// section, a newline, then the devDependencies section. An empty section
// leaves an empty segment, so a manifest without dependencies renders "\n".
func (m *Manifest) RemoveCandidates() string {
	return strings.Join(m.DependencyNames(), "\n") + "\n" + strings.Join(m.DevDependencyNames(), "\n")
}

// ScriptList lists the script names one per line.
func (m *Manifest) ScriptList() string {
	return strings.Join(m.ScriptNames(), "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
