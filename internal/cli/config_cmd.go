package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hbjs97/jumpr/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "설정 파일을 관리한다",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "설정 파일 경로를 출력한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.CfgPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "기본값이 적용된 최종 설정을 출력한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("cli.config.show: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "기본 설정 파일을 생성한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				created, err := config.EnsureDefault(a.CfgPath)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 이미 존재합니다: %s\n", a.CfgPath)
				}
				return nil
			},
		},
	)
	return cmd
}
