package provider

// Source selects where a template comes from.
type Source struct {
	// Template is a bundled template name or a local directory path.
	Template string
	// GitURL selects a remote repository. When set, Template is ignored.
	GitURL string
	// Git narrows the remote clone.
	Git GitOptions
}

// NewProvider creates the provider for src: git when a URL is given, local
// when Template looks like a path, bundled otherwise.
func NewProvider(src Source) (Provider, error) {
	if src.GitURL != "" {
		return NewGitProvider(src.GitURL, src.Git)
	}

	name := src.Template
	if name == "" {
		name = DefaultBundledTemplate
	}

	if IsLocalPath(name) {
		return NewLocalProvider(name), nil
	}
	return NewBundledProvider(name), nil
}
