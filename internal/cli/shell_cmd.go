package cli

import (
	"fmt"

	"github.com/hbjs97/jumpr/internal/logger"
	"github.com/hbjs97/jumpr/internal/setup"
	"github.com/hbjs97/jumpr/internal/shell"
	"github.com/hbjs97/jumpr/internal/version"
	"github.com/spf13/cobra"
)

func (a *App) newShellInitCmd() *cobra.Command {
	var (
		shellType  string
		navigate   string
		code       string
		requireVer string
	)
	cmd := &cobra.Command{
		Use:   "shell-init",
		Short: "셸 통합 코드를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if requireVer != "" {
				req, err := version.ResolveRequirement(requireVer)
				if err != nil {
					return err
				}
				if err := version.Check(version.Version, req); err != nil {
					return err
				}
			}

			if shellType == "" {
				shellType = setup.DetectShell()
			}
			out, err := shell.Render(shellType, shell.Options{
				ExePath:  a.executable(),
				Navigate: navigate,
				Code:     code,
			})
			if err != nil {
				return err
			}
			logger.Debug().Str("shell", shellType).Msg("shell integration rendered")
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (fish, zsh, bash; 기본값은 $SHELL)")
	cmd.Flags().StringVar(&navigate, "navigate", "j", "디렉토리 이동 함수 이름")
	cmd.Flags().StringVar(&code, "code", "jc", "에디터 실행 함수 이름")
	cmd.Flags().StringVar(&requireVer, "require-version", "", "요구 버전 또는 버전이 적힌 .toml 파일")
	return cmd
}
