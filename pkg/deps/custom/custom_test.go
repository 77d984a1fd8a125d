package custom

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/matzehuels/yarn-completions/pkg/deps"
	"github.com/matzehuels/yarn-completions/pkg/errors"
)

const exampleYAML = `dependencies:
  - vue
dev_dependencies:
  - "@babel/core"
exclude:
  - axios
  - gulp
`

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReaderAccessors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"yaml", "/home/me/.yarn-autocompletions.yml", exampleYAML},
		{"yaml long extension", "/home/me/overrides.yaml", exampleYAML},
		{"toml", "/home/me/overrides.toml", `
dependencies = ["vue"]
dev_dependencies = ["@babel/core"]
exclude = ["axios", "gulp"]
`},
		{"json", "/home/me/overrides.json", `{
  "dependencies": ["vue"],
  "dev_dependencies": ["@babel/core"],
  "exclude": ["axios", "gulp"]
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, tt.path, tt.content)
			r := NewReader(fs, tt.path)

			if got, want := r.Dependencies().Sorted(), []string{"vue"}; !slices.Equal(got, want) {
				t.Errorf("Dependencies() = %v, want %v", got, want)
			}
			if got, want := r.DevDependencies().Sorted(), []string{"@babel/core"}; !slices.Equal(got, want) {
				t.Errorf("DevDependencies() = %v, want %v", got, want)
			}
			if got, want := r.Exclude().Sorted(), []string{"axios", "gulp"}; !slices.Equal(got, want) {
				t.Errorf("Exclude() = %v, want %v", got, want)
			}
		})
	}
}

func TestReaderDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content *string
	}{
		{"missing file", "/nope.yml", nil},
		{"empty path", "", nil},
		{"empty file", "/empty.yml", ptr("")},
		{"malformed yaml", "/bad.yml", ptr("dependencies: [vue\n")},
		{"malformed toml", "/bad.toml", ptr("dependencies = [")},
		{"malformed json", "/bad.json", ptr("{")},
		{"scalar document", "/scalar.yml", ptr("just a string\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				writeFile(t, fs, tt.path, *tt.content)
			}
			r := NewReader(fs, tt.path)

			for name, s := range map[string]deps.Set{
				"Dependencies":    r.Dependencies(),
				"DevDependencies": r.DevDependencies(),
				"Exclude":         r.Exclude(),
			} {
				if s == nil || s.Len() != 0 {
					t.Errorf("%s() = %v, want empty set", name, s)
				}
			}
		})
	}
}

func TestReaderFieldIsolation(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/o.yml", `dependencies:
  - vue
exclude: axios
dev_dependencies:
  - 42
`)
	r := NewReader(fs, "/o.yml")

	if !r.Dependencies().Has("vue") {
		t.Error("valid dependencies should survive a broken exclude field")
	}
	if r.Exclude().Len() != 0 {
		t.Errorf("Exclude() = %v, want empty", r.Exclude().Sorted())
	}
	if r.DevDependencies().Len() != 0 {
		t.Errorf("DevDependencies() = %v, want empty", r.DevDependencies().Sorted())
	}
}

func TestReaderAbsentFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/o.yml", "exclude:\n  - gulp\n")
	r := NewReader(fs, "/o.yml")

	if r.Dependencies().Len() != 0 || r.DevDependencies().Len() != 0 {
		t.Error("absent fields should be empty")
	}
	if !r.Exclude().Has("gulp") {
		t.Error("Exclude() should contain gulp")
	}
}

func TestReaderAdditions(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/o.yml", exampleYAML)
	r := NewReader(fs, "/o.yml")

	if !r.Additions(deps.Normal).Has("vue") {
		t.Error("Additions(Normal) should contain vue")
	}
	if !r.Additions(deps.Dev).Has("@babel/core") {
		t.Error("Additions(Dev) should contain @babel/core")
	}
	if r.Additions(deps.Dev).Has("vue") {
		t.Error("Additions(Dev) should not contain normal additions")
	}
}

func TestReaderLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	r := NewReader(afero.NewMemMapFs(), "/missing.yml").WithLogger(logger)
	_ = r.Exclude()

	if !strings.Contains(buf.String(), "override document unavailable") {
		t.Errorf("expected debug log, got %q", buf.String())
	}

	buf.Reset()
	logger.SetLevel(log.InfoLevel)
	_ = r.Exclude()
	if buf.Len() != 0 {
		t.Errorf("expected no output above debug level, got %q", buf.String())
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/o.yml", exampleYAML)

	doc, err := Load(fs, "/o.yml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(doc.Dependencies, []string{"vue"}) {
		t.Errorf("Dependencies = %v", doc.Dependencies)
	}
	if !slices.Equal(doc.Exclude, []string{"axios", "gulp"}) {
		t.Errorf("Exclude = %v", doc.Exclude)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		code    errors.Code
	}{
		{"missing", nil, errors.ErrCodeFileNotFound},
		{"malformed", ptr("exclude: [a\n"), errors.ErrCodeInvalidConfig},
		{"wrong field type", ptr("exclude: axios\n"), errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				writeFile(t, fs, "/o.yml", *tt.content)
			}
			_, err := Load(fs, "/o.yml")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	want := filepath.Join(home, FileName)
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestReaderOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(exampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewReader(afero.NewOsFs(), path)
	if r.Path() != path {
		t.Errorf("Path() = %q, want %q", r.Path(), path)
	}
	if !r.Exclude().Has("axios") {
		t.Error("Exclude() should contain axios")
	}
}

func ptr(s string) *string { return &s }

func TestExampleDocument(t *testing.T) {
	doc, err := Load(afero.NewOsFs(), filepath.Join("..", "..", "..", "yarn-autocompletions.example.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(doc.DevDependencies, []string{"@babel/core"}) {
		t.Errorf("DevDependencies = %v", doc.DevDependencies)
	}
	if !slices.Equal(doc.Exclude, []string{"axios", "gulp"}) {
		t.Errorf("Exclude = %v", doc.Exclude)
	}
}
