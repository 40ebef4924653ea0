package provider

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"sort"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/model"
)

//go:embed all:templates
var bundledFS embed.FS

// DefaultBundledTemplate is used when no template is selected.
const DefaultBundledTemplate = "basic-service"

// BundledInfo describes one template of the bundled catalog.
type BundledInfo struct {
	Name        string
	Description string
	Version     string
}

// BundledProvider extracts a named template from an embedded catalog.
type BundledProvider struct {
	fsys fs.FS
	name string
}

// catalog returns the embedded catalog rooted at its template directories.
func catalog() fs.FS {
	sub, err := fs.Sub(bundledFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewBundledProvider creates a provider for a template of the built-in catalog.
func NewBundledProvider(name string) *BundledProvider {
	return NewBundledProviderFS(catalog(), name)
}

// NewBundledProviderFS creates a provider reading templates from fsys, where
// each top-level directory is one template.
func NewBundledProviderFS(fsys fs.FS, name string) *BundledProvider {
	return &BundledProvider{fsys: fsys, name: name}
}

// Name returns the provider name.
func (p *BundledProvider) Name() string {
	return "bundled"
}

// Fetch extracts the template into a temporary directory.
func (p *BundledProvider) Fetch(ctx context.Context) (*Tree, error) {
	debug.Debug("[provider] Fetching bundled template: %s", p.name)

	if !fs.ValidPath(p.name) || p.name == "." || path.Dir(p.name) != "." {
		return nil, NewNotFoundError(p.Name(), p.name, "")
	}
	info, err := fs.Stat(p.fsys, p.name)
	if err != nil || !info.IsDir() {
		debug.Debug("[provider] Bundled template not found: %s", p.name)
		return nil, NewNotFoundError(p.Name(), p.name,
			"no bundled template with this name (run 'jamgen templates' to list them)")
	}

	if err := ctx.Err(); err != nil {
		return nil, NewFetchError(p.Name(), p.name, err)
	}

	dir, err := newTempDir(p.Name())
	if err != nil {
		return nil, NewFetchError(p.Name(), p.name, err)
	}

	files, err := extractFS(p.fsys, p.name, dir)
	if err != nil {
		_ = removeTempDir(dir)
		return nil, NewFetchError(p.Name(), p.name, err)
	}

	debug.Debug("[provider] Extracted %d files from bundled template %s to %s", files, p.name, dir)
	return &Tree{Root: dir, tempDir: dir}, nil
}

// ListBundled returns the names of the built-in templates, sorted.
func ListBundled() []string {
	return ListTemplates(catalog())
}

// ListTemplates returns the top-level directory names of fsys, sorted.
func ListTemplates(fsys fs.FS) []string {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// DescribeBundled reads the manifest of every built-in template.
func DescribeBundled() ([]BundledInfo, error) {
	return DescribeTemplates(catalog())
}

// DescribeTemplates reads the manifest of every template in fsys.
func DescribeTemplates(fsys fs.FS) ([]BundledInfo, error) {
	var infos []BundledInfo
	for _, name := range ListTemplates(fsys) {
		manifestPath := path.Join(name, model.ManifestFile)
		data, err := fs.ReadFile(fsys, manifestPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				debug.Debug("[provider] Skipping %s: no manifest", name)
				continue
			}
			return nil, err
		}
		m, err := model.ParseManifest(data, manifestPath)
		if err != nil {
			return nil, err
		}
		infos = append(infos, BundledInfo{
			Name:        name,
			Description: m.Template.Description,
			Version:     m.Template.Version,
		})
	}
	return infos, nil
}
