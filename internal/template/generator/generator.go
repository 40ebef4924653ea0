// Package generator materializes a template tree into a new project directory.
package generator

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/model"
)

// binarySniffLen is how many leading bytes are checked for NUL when deciding
// whether a file is binary.
const binarySniffLen = 512

// Renderer renders file contents and single path components.
type Renderer interface {
	Render(text string, bindings map[string]string) (string, error)
	RenderFilename(name string, bindings map[string]string) (string, error)
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TemplateRoot is the directory holding the template and its manifest.
	TemplateRoot string

	// OutputRoot is the project directory to create. It must not exist.
	OutputRoot string

	// Manifest is the parsed manifest of TemplateRoot.
	Manifest *model.Manifest

	// Bindings holds the variable values.
	Bindings map[string]string
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	// FilesRendered is the number of files whose content was rendered.
	FilesRendered int

	// FilesCopied is the number of files copied byte-for-byte.
	FilesCopied int

	// Directories is the number of directories created below OutputRoot.
	Directories int

	// BytesWritten is the total size of all written files.
	BytesWritten int64

	// Files lists written files relative to OutputRoot, in walk order.
	Files []string
}

// Generator generates projects from template trees.
type Generator struct {
	renderer Renderer
	writer   Writer
}

// New creates a Generator that renders with r and writes to the filesystem.
func New(r Renderer) *Generator {
	return &Generator{
		renderer: r,
		writer:   NewFileWriter(),
	}
}

// Generate walks opts.TemplateRoot in lexical order and writes the project to
// opts.OutputRoot. The first failure aborts generation; files already written
// are left in place.
func (g *Generator) Generate(opts GenerateOptions) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	debug.Debug("[generator] Starting generation: template=%s, root=%s, output=%s",
		opts.Manifest.Template.Name, opts.TemplateRoot, opts.OutputRoot)

	if g.writer.Exists(opts.OutputRoot) {
		return nil, newGeneratorError(GeneratorOutputExists,
			"output directory already exists",
			opts.OutputRoot,
			nil)
	}
	if err := g.writer.CreateDir(opts.OutputRoot); err != nil {
		return nil, err
	}

	result := &GenerateResult{Files: []string{}}

	err := filepath.WalkDir(opts.TemplateRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to read template tree", path, walkErr)
		}

		rel, err := filepath.Rel(opts.TemplateRoot, path)
		if err != nil {
			return newGeneratorError(GeneratorPathError, "failed to compute relative path", path, err)
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if ShouldIgnore(opts.Manifest, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			outRel, err := RenderPath(rel, opts.Bindings, g.renderer, false)
			if err != nil {
				return err
			}
			if err := g.writer.CreateDir(filepath.Join(opts.OutputRoot, filepath.FromSlash(outRel))); err != nil {
				return err
			}
			result.Directories++
			return nil
		}

		return g.generateFile(opts, path, rel, result)
	})
	if err != nil {
		debug.Debug("[generator] Generation aborted: %v", err)
		return result, err
	}

	debug.Debug("[generator] Generation complete: rendered=%d, copied=%d, dirs=%d, bytes=%d",
		result.FilesRendered, result.FilesCopied, result.Directories, result.BytesWritten)
	return result, nil
}

func (g *Generator) generateFile(opts GenerateOptions, path, rel string, result *GenerateResult) error {
	info, err := os.Stat(path)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to stat template file", rel, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to read template file", rel, err)
	}

	marked := strings.HasSuffix(rel, TemplateSuffix)
	render := ShouldRenderContent(opts.Manifest, rel, content)

	outRel, err := RenderPath(rel, opts.Bindings, g.renderer, marked)
	if err != nil {
		return err
	}
	outPath := filepath.Join(opts.OutputRoot, filepath.FromSlash(outRel))

	if render {
		out, err := g.renderer.Render(string(content), opts.Bindings)
		if err != nil {
			return newGeneratorError(GeneratorRenderFailed, "failed to render file content", rel, err)
		}
		content = []byte(out)
		result.FilesRendered++
		debug.Debug("[generator] Rendered %s -> %s", rel, outRel)
	} else {
		result.FilesCopied++
		debug.Debug("[generator] Copied %s -> %s", rel, outRel)
	}

	if err := g.writer.WriteFile(outPath, content, info.Mode()); err != nil {
		return err
	}
	result.BytesWritten += int64(len(content))
	result.Files = append(result.Files, outRel)
	return nil
}

// IsBinaryContent reports whether content looks binary: a NUL within the
// first bytes.
func IsBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > binarySniffLen {
		checkLen = binarySniffLen
	}
	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.Manifest == nil {
		return newGeneratorError(GeneratorInvalidOptions, "manifest cannot be nil", "", nil)
	}
	if opts.TemplateRoot == "" {
		return newGeneratorError(GeneratorInvalidOptions, "template root cannot be empty", "", nil)
	}
	if opts.OutputRoot == "" {
		return newGeneratorError(GeneratorInvalidOptions, "output directory cannot be empty", "", nil)
	}
	return nil
}
