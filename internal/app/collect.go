package app

import (
	"fmt"
	"slices"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/model"
)

// Reserved variables injected from the project name.
const (
	VarProjectName = "project_name"
	VarCrateName   = "crate_name"
)

// Prompter asks the user for placeholder values.
type Prompter interface {
	// Input asks for free text. validate, when non-nil, must accept the
	// answer before it is returned.
	Input(message, defaultValue string, validate func(string) error) (string, error)
	// Select asks for one of options.
	Select(message string, options []string, defaultValue string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, defaultValue bool) (bool, error)
}

// CollectOptions configures CollectBindings.
type CollectOptions struct {
	// Preset holds values supplied up front (defines and values file).
	Preset map[string]string
	// ProjectName is injected as project_name and, normalized, crate_name.
	ProjectName string
	// Interactive enables prompting for unbound placeholders.
	Interactive bool
	// Prompter is required when Interactive is set.
	Prompter Prompter
}

// CollectBindings builds the variable bindings for a manifest.
//
// Preset values are copied first, then the project name variables are
// injected. Each placeholder still unbound is prompted for in name order
// when interactive, or set to its declared default otherwise. Placeholders
// without a default stay unbound in non-interactive mode.
func CollectBindings(m *model.Manifest, opts CollectOptions) (map[string]string, error) {
	debug.DebugSection("[app] Collect variables")

	if opts.Interactive && opts.Prompter == nil {
		return nil, NewValidationError("interactive collection requires a prompter", nil)
	}

	bindings := make(map[string]string, len(opts.Preset)+len(m.Placeholders)+2)
	for k, v := range opts.Preset {
		bindings[k] = v
	}
	bindings[VarProjectName] = opts.ProjectName
	bindings[VarCrateName] = ModuleIdentifier(opts.ProjectName)

	// Values not typed by the user are checked against the placeholder regex.
	unchecked := make(map[string]bool)
	for name := range opts.Preset {
		unchecked[name] = true
	}

	for _, name := range m.PlaceholderNames() {
		if _, ok := bindings[name]; ok {
			debug.Debug("[app] Variable %s: preset", name)
			continue
		}
		p := m.Placeholders[name]

		if !opts.Interactive {
			if def, ok := p.DefaultValue(); ok {
				bindings[name] = def
				unchecked[name] = true
				debug.Debug("[app] Variable %s: default %q", name, def)
			} else {
				debug.Debug("[app] Variable %s: no default, left unbound", name)
			}
			continue
		}

		value, err := promptPlaceholder(opts.Prompter, name, p)
		if err != nil {
			return nil, NewAppError(PromptFailed, fmt.Sprintf("failed to read value for %s", name), err)
		}
		bindings[name] = value
		debug.Debug("[app] Variable %s: prompted", name)
	}

	for _, name := range m.PlaceholderNames() {
		if !unchecked[name] {
			continue
		}
		if err := checkValue(name, m.Placeholders[name], bindings[name]); err != nil {
			return nil, err
		}
	}

	debug.DebugYAML("[app] Bindings", bindings)
	return bindings, nil
}

func promptPlaceholder(pr Prompter, name string, p model.Placeholder) (string, error) {
	switch p := p.(type) {
	case *model.StringPlaceholder:
		def, hasDefault := p.DefaultValue()
		if choices := p.Choices(); len(choices) > 0 {
			if !hasDefault || !slices.Contains(choices, def) {
				def = choices[0]
			}
			return pr.Select(p.Prompt(), choices, def)
		}

		var validate func(string) error
		if p.Pattern != nil {
			validate = func(v string) error {
				return checkValue(name, p, v)
			}
		}
		return pr.Input(p.Prompt(), def, validate)

	case *model.BoolPlaceholder:
		def := false
		if p.Default != nil {
			def = *p.Default
		}
		ok, err := pr.Confirm(p.Prompt(), def)
		if err != nil {
			return "", err
		}
		return model.FormatBool(ok), nil

	default:
		return "", fmt.Errorf("unsupported placeholder type %T", p)
	}
}

// checkValue validates a value against a string placeholder's regex.
func checkValue(name string, p model.Placeholder, value string) error {
	sp, ok := p.(*model.StringPlaceholder)
	if !ok || sp.Validate(value) {
		return nil
	}
	return NewValidationError(fmt.Sprintf("value %q for %s does not match pattern %s", value, name, sp.Regex), nil)
}
