package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/manifoldco/promptui"
)

// ConfirmerAdapter asks yes/no questions on the terminal
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	// prompts go to stderr so stdout only carries results (and stays valid JSON)
	out io.WriteCloser
}

// NewConfirmerAdapter creates a new confirmer bound to the process terminal
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg, out: os.Stderr}
}

// Confirm shows a [y/N] prompt. Answering no returns false, Ctrl-C cancels the deployment.
func (c *ConfirmerAdapter) Confirm(ctx context.Context, message string) (bool, error) {
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation required but running in non-interactive mode")
	}

	prompt := c.newPrompt(message)
	_, err := prompt.Run()
	return interpretConfirm(err)
}

func (c *ConfirmerAdapter) newPrompt(message string) *promptui.Prompt {
	return &promptui.Prompt{
		Label:     color.New(color.FgYellow, color.Bold).Sprint(message),
		IsConfirm: true,
		Stdout:    c.out,
	}
}

// interpretConfirm maps promptui's confirm results onto (answer, error)
func interpretConfirm(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, domain.ErrDeploymentCancelled
	default:
		return false, fmt.Errorf("prompt failed: %w", err)
	}
}

var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
