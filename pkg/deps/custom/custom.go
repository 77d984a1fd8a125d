package custom

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/yarn-completions/pkg/deps"
	"github.com/matzehuels/yarn-completions/pkg/errors"
)

// FileName is the override document looked up in the home directory.
const FileName = ".yarn-autocompletions.yml"

// Document field names.
const (
	FieldDependencies    = "dependencies"
	FieldDevDependencies = "dev_dependencies"
	FieldExclude         = "exclude"
)

// DefaultPath returns ~/.yarn-autocompletions.yml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Document is a fully decoded override file.
type Document struct {
	Dependencies    []string
	DevDependencies []string
	Exclude         []string
}

// Load reads and strictly decodes the document at path. Unlike [Reader] it
// reports the first problem it finds.
func Load(fsys afero.Fs, path string) (*Document, error) {
	raw, err := readRaw(fsys, path)
	if err != nil {
		return nil, err
	}

	var doc Document
	for _, f := range []struct {
		name string
		dst  *[]string
	}{
		{FieldDependencies, &doc.Dependencies},
		{FieldDevDependencies, &doc.DevDependencies},
		{FieldExclude, &doc.Exclude},
	} {
		names, err := stringList(raw[f.name])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: field %q", path, f.name)
		}
		*f.dst = names
	}
	return &doc, nil
}

// Reader exposes the override document as [deps.Overrides]. The zero value
// is not usable; construct with [NewReader].
type Reader struct {
	fs     afero.Fs
	path   string
	logger *log.Logger
}

// NewReader returns a Reader for the document at path. An empty path yields
// empty sets.
func NewReader(fsys afero.Fs, path string) *Reader {
	return &Reader{fs: fsys, path: path}
}

// WithLogger sets the logger used to report degraded reads at debug level.
func (r *Reader) WithLogger(l *log.Logger) *Reader {
	r.logger = l
	return r
}

// Path returns the document location.
func (r *Reader) Path() string { return r.path }

// Dependencies returns the names added to `yarn add` suggestions.
func (r *Reader) Dependencies() deps.Set { return r.field(FieldDependencies) }

// DevDependencies returns the names added to `yarn add --dev` suggestions.
func (r *Reader) DevDependencies() deps.Set { return r.field(FieldDevDependencies) }

// Exclude returns the names removed from both flavors.
func (r *Reader) Exclude() deps.Set { return r.field(FieldExclude) }

// Additions implements [deps.Overrides].
func (r *Reader) Additions(f deps.Flavor) deps.Set {
	if f == deps.Dev {
		return r.DevDependencies()
	}
	return r.Dependencies()
}

var _ deps.Overrides = (*Reader)(nil)

func (r *Reader) field(name string) deps.Set {
	raw, err := readRaw(r.fs, r.path)
	if err != nil {
		r.debug("override document unavailable", "field", name, "err", err)
		return deps.NewSet()
	}
	names, err := stringList(raw[name])
	if err != nil {
		r.debug("override field ignored", "field", name, "path", r.path, "err", err)
		return deps.NewSet()
	}
	return deps.NewSet(names...)
}

func (r *Reader) debug(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

// readRaw decodes the document into a generic map so each field can be
// validated on its own.
func readRaw(fsys afero.Fs, path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no override document path")
	}
	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return raw, nil
}

// stringList converts a decoded sequence to names. A missing field (nil) is
// an empty list.
func stringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of names, got %T", v)
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a string, got %T", i, item)
		}
		names = append(names, s)
	}
	return names, nil
}
