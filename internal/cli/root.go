package cli

import (
	"os"
	"path/filepath"

	"github.com/hbjs97/jumpr/internal/cmdexec"
	"github.com/hbjs97/jumpr/internal/config"
	"github.com/hbjs97/jumpr/internal/logger"
	"github.com/spf13/cobra"
)

// App은 CLI 명령들이 공유하는 의존성이다. 테스트에서 각 필드를 주입한다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string
	Verbose   bool

	// Getwd는 PATH 인자가 없을 때 기준이 되는 현재 디렉토리를 반환한다.
	Getwd func() (string, error)
	// Executable은 셸 코드에 넣을 jumpr 실행 파일 경로를 반환한다.
	Executable func() (string, error)
	// LoadConfig는 설정 파일을 읽는다. nil이면 config.Load를 사용한다.
	LoadConfig func(path string) (*config.Config, error)

	cfg    *config.Config
	cfgErr error
	loaded bool
}

// NewApp은 실제 환경에 연결된 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		CfgPath:    config.DefaultPath(),
		Getwd:      os.Getwd,
		Executable: os.Executable,
		LoadConfig: config.Load,
	}
}

// NewRootCmd는 jumpr CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jumpr",
		Short:        "리포지토리 인식 프롬프트 경로와 디렉토리 점프",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.loaded = false
			return a.initLogging(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Close()
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 로그를 stderr로 출력")

	cmd.AddCommand(
		a.newShortpathCmd(),
		a.newRootDirCmd(),
		a.newShellInitCmd(),
		a.newReposCmd(),
		a.newFindCmd(),
		a.newConfigCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
		a.newVersionCmd(),
	)
	return cmd
}

// initLogging은 설정의 log 항목과 --verbose로 전역 로거를 구성한다.
// 설정 오류는 여기서 보고하지 않고 각 명령이 처리한다.
func (a *App) initLogging(cmd *cobra.Command) error {
	opts := logger.Options{Verbose: a.Verbose, Console: cmd.ErrOrStderr()}
	if cfg, err := a.loadConfig(); err == nil && cfg.Log.FileEnabled {
		opts.FilePath = filepath.Join(config.DataDir(), "jumpr.log")
		opts.MaxSizeMB = cfg.Log.MaxSizeMB
		opts.MaxBackups = cfg.Log.MaxBackups
	}
	return logger.Init(opts)
}

// loadConfig는 명령 실행당 한 번만 설정 파일을 읽는다.
func (a *App) loadConfig() (*config.Config, error) {
	if a.loaded {
		return a.cfg, a.cfgErr
	}
	load := a.LoadConfig
	if load == nil {
		load = config.Load
	}
	a.cfg, a.cfgErr = load(a.CfgPath)
	a.loaded = true
	return a.cfg, a.cfgErr
}

// targetPath는 PATH 인자(없으면 현재 디렉토리)를 정규화된 절대 경로로 만든다.
// 상대 경로는 주입된 Getwd 기준이다. 심볼릭 링크 해석에 실패하면 정리된 문자 그대로의 경로를 사용한다.
func (a *App) targetPath(args []string) (string, error) {
	var path string
	if len(args) > 0 {
		path = config.ExpandPath(args[0])
	}
	if !filepath.IsAbs(path) {
		getwd := a.Getwd
		if getwd == nil {
			getwd = os.Getwd
		}
		wd, err := getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(wd, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	logger.Debug().Str("path", abs).Msg("symlink resolution failed, using literal path")
	return abs, nil
}

func (a *App) executable() string {
	if a.Executable == nil {
		return "jumpr"
	}
	exe, err := a.Executable()
	if err != nil {
		logger.Debug().Err(err).Msg("executable path unavailable")
		return "jumpr"
	}
	return exe
}
