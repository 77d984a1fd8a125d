package javascript

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/matzehuels/yarn-completions/pkg/errors"
)

// ModulesDir is the installed-modules directory inside a project.
const ModulesDir = "node_modules"

// ScanNodeModules lists the packages installed in dir/node_modules.
//
// Hidden entries and plain files are skipped. A directory whose name starts
// with "@" is a scope: its child directories are reported as "@scope/child".
// The walk is exactly two levels deep. Failing to list the root or a scope
// directory fails the whole scan.
func ScanNodeModules(fsys afero.Fs, dir string) ([]string, error) {
	root := filepath.Join(dir, ModulesDir)

	entries, err := readDir(fsys, root)
	if err != nil {
		return nil, err
	}

	var pkgs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, "@") {
			pkgs = append(pkgs, name)
			continue
		}

		scoped, err := readDir(fsys, filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		for _, s := range scoped {
			if !s.IsDir() || strings.HasPrefix(s.Name(), ".") {
				continue
			}
			pkgs = append(pkgs, name+"/"+s.Name())
		}
	}
	return pkgs, nil
}

func readDir(fsys afero.Fs, path string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(fsys, path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "list %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list %s", path)
	}
	return entries, nil
}
