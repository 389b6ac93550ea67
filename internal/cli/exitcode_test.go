package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hbjs97/jumpr/internal/cli"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"nil", nil, cli.ExitSuccess},
		{"general", errors.New("boom"), cli.ExitGeneral},
		{"config", fmt.Errorf("config.Load: %w", cli.ErrConfig), cli.ExitConfigError},
		{"version mismatch", fmt.Errorf("wrap: %w", cli.ErrVersionMismatch), cli.ExitVersionMismatch},
		{"manifest missing", fmt.Errorf("wrap: %w", cli.ErrManifestNotFound), cli.ExitVersionMismatch},
		{"not found", fmt.Errorf("cli.find: x: %w", cli.ErrNotFound), cli.ExitNotFound},
		{"unsupported shell", cli.ErrUnsupportedShell, cli.ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MapExitCode(tt.err))
		})
	}
}
