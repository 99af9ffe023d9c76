package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/desertthunder/ytimport/internal/tasks"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	youtube    services.Service
	recorder   tasks.RunRecorder
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.ImportEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	YouTube    services.Service
	Recorder   tasks.RunRecorder
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	engine := tasks.NewImportEngine(opts.YouTube, opts.Recorder)
	if len(opts.Config.Importer.WatchLaterNames) > 0 {
		engine.WatchLaterNames = opts.Config.Importer.WatchLaterNames
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		youtube:    opts.YouTube,
		recorder:   opts.Recorder,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		engine:     engine,
	}
}

// SetLogger replaces the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// applyConfigFlag reloads configuration when --config points somewhere other
// than the file loaded at startup.
func (r *Runner) applyConfigFlag(cmd *cli.Command) error {
	return r.reloadConfig(cmd.String("config"))
}

// reloadConfig swaps the runner's config and rebuilds the YouTube service
// from the new credentials.
func (r *Runner) reloadConfig(path string) error {
	if path == "" || path == r.configPath {
		return nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}

	r.config = config
	r.configPath = path
	if len(config.Importer.WatchLaterNames) > 0 {
		r.engine.WatchLaterNames = config.Importer.WatchLaterNames
	}

	svc, err := services.NewYouTubeService(config.Credentials.YouTube.Map())
	if err != nil {
		r.logger.Warnf("failed to create YouTube service %v", err)
		r.youtube = nil
		return nil
	}
	r.youtube = svc
	r.engine.SetService(svc)

	return nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		importFileCommand, importPlaylistCommand, watchLaterCommand,
		authCommand, setupCommand, exportCommand, historyCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// saveTokens updates the in-memory config with fresh OAuth tokens and persists
// it when a config path is known.
func (r *Runner) saveTokens(token *oauth2.Token) error {
	if r.config == nil {
		return fmt.Errorf("config is nil")
	}

	if err := r.config.Credentials.YouTube.Update(token); err != nil {
		return fmt.Errorf("failed to update youtube configuration: %w", err)
	}

	if r.configPath == "" {
		return nil
	}

	if err := shared.SaveConfig(r.config, r.configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
