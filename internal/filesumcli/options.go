package filesumcli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/config"
	"github.com/ronelsolomon/filesummarize/internal/core/prompt"
	"github.com/ronelsolomon/filesummarize/internal/llm/ollama"
)

type Options struct {
	ConfigPath  string
	Host        string
	Model       string
	Format      string
	Output      string
	OutputDir   string
	Pretty      bool
	NoExplain   bool
	Save        bool
	Style       string
	ExcludeDirs []string
	Extensions  []string
	ScanAll     bool
	MaxFileSize int64
	DBPath      string
}

// Prepare layers the resolved config under any flags the user left
// unset, then validates.
func (o *Options) Prepare() error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	o.applyConfig(cfg)
	o.normalize()

	switch o.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("invalid --format %q (expected: text|json|markdown)", o.Format)
	}
	if !prompt.Style(o.Style).Valid() {
		return fmt.Errorf("invalid --style %q (expected: explain|plain)", o.Style)
	}
	if o.MaxFileSize < 0 {
		return fmt.Errorf("max file size must be >= 0")
	}
	return nil
}

func (o *Options) applyConfig(cfg *config.Config) {
	if strings.TrimSpace(o.Host) == "" {
		o.Host = cfg.Host
	}
	if strings.TrimSpace(o.Model) == "" {
		o.Model = cfg.Model
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		o.OutputDir = cfg.OutputDir
	}
	if strings.TrimSpace(o.DBPath) == "" {
		o.DBPath = cfg.DBPath
	}
	if o.MaxFileSize == 0 {
		o.MaxFileSize = cfg.MaxFileSize
	}
	if len(o.ExcludeDirs) == 0 {
		o.ExcludeDirs = cfg.ExcludeDirs
	}
	if len(o.Extensions) == 0 {
		o.Extensions = cfg.Extensions
	}
	if strings.TrimSpace(o.Style) == "" {
		o.Style = cfg.Style
	}
}

func (o *Options) normalize() {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = "text"
	}
	o.Style = strings.ToLower(strings.TrimSpace(o.Style))
	if o.Style == "" {
		o.Style = string(prompt.StyleExplain)
	}
}

// analyzeOptions maps CLI options onto the pipeline. --no-explain
// leaves the generator nil, so extraction runs without a model.
func (o *Options) analyzeOptions(logger *slog.Logger) analyze.Options {
	aopts := analyze.Options{
		Model:       o.Model,
		Style:       prompt.Style(o.Style),
		MaxFileSize: o.MaxFileSize,
		ExcludeDirs: o.ExcludeDirs,
		Extensions:  o.Extensions,
		ScanAll:     o.ScanAll,
		Logger:      logger,
	}
	if !o.NoExplain {
		aopts.Generator = ollama.New(o.Host)
	}
	return aopts
}

type optionsKey struct{}

func optionsFrom(cmd *cobra.Command) *Options {
	if cmd == nil {
		return nil
	}
	root := cmd.Root()
	if root == nil {
		root = cmd
	}
	v := root.Context().Value(optionsKey{})
	opts, _ := v.(*Options)
	return opts
}

func bindFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "path to filesum.toml")
	cmd.PersistentFlags().StringVar(&opts.Host, "host", opts.Host, "Ollama server address")
	cmd.PersistentFlags().StringVarP(&opts.Model, "model", "m", opts.Model, "Ollama model to explain with")
	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: text|json|markdown")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "write the markdown report to this file under the output dir")
	cmd.PersistentFlags().BoolVarP(&opts.Pretty, "pretty", "p", opts.Pretty, "style markdown output for the terminal")
	cmd.PersistentFlags().BoolVar(&opts.NoExplain, "no-explain", opts.NoExplain, "extract structure only, skip the model")
	cmd.PersistentFlags().BoolVar(&opts.Save, "save", opts.Save, "record the run in the history database")
	cmd.PersistentFlags().StringVar(&opts.Style, "style", opts.Style, "explanation style: explain|plain")
	cmd.PersistentFlags().StringSliceVarP(&opts.ExcludeDirs, "exclude", "x", nil, "directory names to skip (comma separated list: -x vendor,dist)")
	cmd.PersistentFlags().StringSliceVarP(&opts.Extensions, "extensions", "e", nil, "only analyze these extensions (comma separated list: -e go,py)")
	cmd.PersistentFlags().BoolVarP(&opts.ScanAll, "all", "A", opts.ScanAll, "scan hidden and ignored files too")
	cmd.PersistentFlags().Int64Var(&opts.MaxFileSize, "max-size", opts.MaxFileSize, "per-file size limit in bytes (0 = configured default)")
	cmd.PersistentFlags().StringVarP(&opts.DBPath, "database", "d", opts.DBPath, "history database path")
}

func ExecuteForTest(cmd *cobra.Command) (string, Options, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	opts := optionsFrom(cmd)
	if opts == nil {
		return out.String(), Options{}, err
	}
	opts.normalize()

	return out.String(), *opts, err
}

func newDefaultOptions() *Options {
	return &Options{
		Format: "text",
	}
}

func withOptionsContext(cmd *cobra.Command, opts *Options) {
	cmd.SetContext(context.WithValue(context.Background(), optionsKey{}, opts))
}
