package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storectl/internal/app"
	"storectl/internal/config"
	"storectl/internal/core"
	"storectl/internal/faults"
	"storectl/internal/modules/host"
	"storectl/internal/present"
	"storectl/pkg/logger"
)

const examples = `  storectl GET products
  storectl GET products/15
  storectl POST products "Remera Nueva" 300 remeras
  storectl DELETE products/7`

// Options задают окружение запуска.
type Options struct {
	Version    string
	Stdout     io.Writer
	Stderr     io.Writer
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	return o
}

// New создает корневую CLI-команду.
func New(opts Options) *cobra.Command {
	opts = opts.withDefaults()

	var (
		configPath string
		baseURL    string
		query      string
	)

	root := &cobra.Command{
		Use:           "storectl " + core.Usage,
		Short:         "Клиент каталога продуктов Fake Store API",
		Example:       examples,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return faults.Usage("missing arguments, usage: " + core.Usage)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return faults.New(faults.UsageError, "load config", err)
			}
			if baseURL != "" {
				cfg.API.BaseURL = baseURL
			}
			lg := logger.New(opts.Stderr, cfg.Log.Level)

			p, err := present.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), query)
			if err != nil {
				return err
			}
			a, err := app.NewApp(cmd.Context(), cfg, lg, app.Options{HTTPClient: opts.HTTPClient})
			if err != nil {
				return err
			}
			resp, err := a.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			return p.Success(resp)
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	flags := root.Flags()
	// Флаги только до глагола: "-5" среди параметров остается позиционным.
	flags.SetInterspersed(false)
	flags.StringVar(&configPath, "config", "", "path to YAML config file")
	flags.StringVar(&baseURL, "base-url", "", "API base URL (default "+config.DefaultBaseURL+")")
	flags.StringVar(&query, "jq", "", "jq expression applied to the response before printing")

	// help и completion не должны перехватывать глагол; -h/--help остаются.
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})
	root.AddCommand(newVersionCmd(opts.Version))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
			defer cancel()

			p, _ := host.Describe(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "storectl %s %s\n", version, p)
		},
	}
}

// Execute запускает команду и возвращает код завершения процесса.
func Execute(ctx context.Context, args []string, opts Options) int {
	opts = opts.withDefaults()
	root := New(opts)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		p := &present.Presenter{Out: opts.Stdout, Err: opts.Stderr}
		p.Failure(err)
		return 1
	}
	return 0
}
