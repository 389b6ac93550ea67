package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hbjs97/jumpr/internal/doctor"
	"github.com/hbjs97/jumpr/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shellType := setup.DetectShell()
			results := doctor.RunAll(cmd.Context(), a.Commander, a.CfgPath, shellType, setup.ShellRCPath(shellType))
			printDiagResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return color.GreenString("OK")
	case doctor.StatusWarn:
		return color.YellowString("!!")
	case doctor.StatusFail:
		return color.RedString("FAIL")
	default:
		return "??"
	}
}
