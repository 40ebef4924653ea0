package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/jamgen/internal/app"
)

// surveyPrompter asks for placeholder values on the terminal.
type surveyPrompter struct {
	opts []survey.AskOpt
}

var _ app.Prompter = (*surveyPrompter)(nil)

func newSurveyPrompter(opts ...survey.AskOpt) *surveyPrompter {
	return &surveyPrompter{opts: opts}
}

// Input prompts for free text.
func (p *surveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	opts := p.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(stringValidator(validate)))
	}

	if err := survey.AskOne(prompt, &result, opts...); err != nil {
		return "", err
	}
	return result, nil
}

// Select prompts for one of options.
func (p *surveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if defaultValue != "" {
		prompt.Default = defaultValue
	}

	if err := survey.AskOne(prompt, &result, p.opts...); err != nil {
		return "", err
	}
	return result, nil
}

// Confirm prompts for yes or no.
func (p *surveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	if err := survey.AskOne(prompt, &result, p.opts...); err != nil {
		return false, err
	}
	return result, nil
}

// stringValidator adapts a string check to a survey validator.
func stringValidator(validate func(string) error) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return validate(str)
	}
}
