// Package engine renders Liquid templates against string bindings.
package engine

import (
	"strings"

	"github.com/osteele/liquid"

	"github.com/tacogips/jamgen/internal/debug"
)

// Engine renders file contents and file names.
type Engine struct {
	liquid *liquid.Engine
}

// New creates an Engine with strict variables and the case filters registered.
func New() *Engine {
	le := liquid.NewEngine()
	le.StrictVariables()
	for name, fn := range caseFilters() {
		le.RegisterFilter(name, fn)
	}
	return &Engine{liquid: le}
}

// Render renders text against bindings.
func (e *Engine) Render(text string, bindings map[string]string) (string, error) {
	tpl, perr := e.liquid.ParseString(text)
	if perr != nil {
		debug.Debug("[engine] Parse failed: %v", perr)
		return "", &RenderError{Type: RenderParseFailed, Message: "failed to parse template", Cause: perr}
	}

	out, rerr := tpl.RenderString(toBindings(bindings))
	if rerr != nil {
		debug.Debug("[engine] Evaluation failed: %v", rerr)
		return "", &RenderError{Type: RenderEvalFailed, Message: "failed to render template", Cause: rerr}
	}
	return out, nil
}

// RenderFilename renders a single path component. Names without "{{" are
// returned unchanged.
func (e *Engine) RenderFilename(name string, bindings map[string]string) (string, error) {
	if !strings.Contains(name, "{{") {
		return name, nil
	}
	return e.Render(name, bindings)
}

func toBindings(b map[string]string) liquid.Bindings {
	out := make(liquid.Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
