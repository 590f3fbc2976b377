package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ConfigRenderer renders local config operations
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// runtimeView is the YAML document printed by `config`
type runtimeView struct {
	Network     string                `yaml:"network"`
	ProjectRoot string                `yaml:"project_root"`
	Source      string                `yaml:"source"`
	Project     *config.ProjectConfig `yaml:"project,omitempty"`
}

// RenderConfig prints the effective configuration
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	network := result.NetworkName
	if network == "" {
		network = "(not set)"
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("Current config:"))

	data, err := yaml.Marshal(runtimeView{
		Network:     network,
		ProjectRoot: result.ProjectRoot,
		Source:      result.ConfigSource,
		Project:     result.ProjectConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if _, err := r.out.Write(data); err != nil {
		return err
	}

	fmt.Fprintln(r.out)
	if result.Exists {
		fmt.Fprintf(r.out, "📁 Local config: %s\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintln(r.out, faintStyle.Sprint("No local config file; use `insight-deploy config set network <name>` to create one"))
	}
	return nil
}

// RenderSet prints the result of setting a key
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, color.New(color.Bold).Sprint(result.Value))))
	fmt.Fprintf(r.out, "📁 Config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove prints the result of removing a key
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if result.RemovedValue == "" {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s was not set", result.Key)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s (was: %s)", result.Key, result.RemovedValue)))
	}
	fmt.Fprintf(r.out, "📁 Config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
