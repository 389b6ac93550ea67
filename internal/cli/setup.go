package cli

import (
	"fmt"

	"github.com/hbjs97/jumpr/internal/config"
	"github.com/hbjs97/jumpr/internal/setup"
	"github.com/hbjs97/jumpr/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var shellType string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일과 셸 hook을 설치한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (기본값은 $SHELL)")
	return cmd
}

// runSetup은 기본 설정 파일을 만들고 셸 RC 파일에 hook을 한 번만 추가한다.
func (a *App) runSetup(cmd *cobra.Command, shellType string) error {
	out := cmd.OutOrStdout()

	created, err := config.EnsureDefault(a.CfgPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	}

	if shellType == "" {
		shellType = setup.DetectShell()
	}
	if !shell.IsSupported(shellType) {
		return fmt.Errorf("cli.setup: %q: %w", shellType, ErrUnsupportedShell)
	}

	rcPath := setup.ShellRCPath(shellType)
	installed, err := setup.InstallShellHook(shellType, rcPath, a.executable())
	if err != nil {
		return err
	}
	if installed {
		fmt.Fprintf(out, "셸 hook이 추가되었습니다: %s\n", rcPath)
		fmt.Fprintln(out, "새 셸을 열거나 RC 파일을 다시 읽으세요.")
	} else {
		fmt.Fprintf(out, "셸 hook이 이미 설치되어 있습니다: %s\n", rcPath)
	}
	return nil
}
