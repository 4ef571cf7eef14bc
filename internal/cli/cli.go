// Package cli implements the hydrodraw command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/buildinfo"
	"github.com/matzehuels/hydrodraw/pkg/config"
	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	drawio "github.com/matzehuels/hydrodraw/pkg/io"
	"github.com/matzehuels/hydrodraw/pkg/store"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "hydrodraw"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	backend    string
	dataPath   string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the loaded configuration.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "HydroDraw is a 2D CAD core for piping and site plans",
		Long:         `HydroDraw snaps, splits, trims and extends 2D drawings stored as projects, and serves the same operations over HTTP for the desktop client.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hydrodraw/config.toml)")
	root.PersistentFlags().StringVar(&c.backend, "store", "", "project store backend: file, memory, sqlite, redis, mongo")
	root.PersistentFlags().StringVar(&c.dataPath, "data", "", "data directory (file store) or database file (sqlite)")

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.projectCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.splitAllCommand())
	root.AddCommand(c.trimCommand())
	root.AddCommand(c.extendCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.orthoCommand())
	root.AddCommand(c.polarCommand())
	root.AddCommand(c.completionCommand())
	c.registerCompletions(root)

	return root
}

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.backend != "" {
		cfg.Store.Backend = c.backend
	}
	if c.dataPath != "" {
		cfg.Store.Path = c.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.SetLevel(cfg.LogLevel())
	return nil
}

// =============================================================================
// Workspace Factory
// =============================================================================

// session is a workspace bound to one project, either in the configured
// store or loaded from a JSON file.
type session struct {
	svc       *workspace.Service
	projectID string
	file      string
	close     func() error
}

// save writes a file-backed project back to its file. Store-backed sessions
// are saved by every operation already.
func (s *session) save(ctx context.Context) error {
	if s.file == "" {
		return nil
	}
	p, err := s.svc.Get(ctx, s.projectID)
	if err != nil {
		return err
	}
	return drawio.ExportJSON(p, s.file)
}

// isFileRef reports whether ref names a project JSON file rather than a
// stored project id.
func isFileRef(ref string) bool {
	if strings.HasSuffix(strings.ToLower(ref), ".json") {
		return true
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}

// openStore opens the configured project store.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	c.Logger.Debug("opening store", "backend", c.cfg.Store.Backend, "path", c.cfg.Store.Path)
	return store.Open(ctx, c.cfg.Store)
}

// newService builds a workspace over st with the configured snap settings.
func (c *CLI) newService(st store.Store) *workspace.Service {
	return workspace.New(st,
		workspace.WithLogger(c.Logger),
		workspace.WithSnapOptions(c.cfg.SnapOptions()...),
	)
}

// openSession resolves a project reference. File references are loaded into
// a memory store so every command shares the workspace code path.
func (c *CLI) openSession(ctx context.Context, ref string) (*session, error) {
	if isFileRef(ref) {
		p, err := drawio.ImportJSON(ref)
		if err != nil {
			return nil, err
		}
		st := store.NewMemoryStore()
		if err := st.Create(ctx, p); err != nil {
			return nil, err
		}
		return &session{svc: c.newService(st), projectID: p.ID, file: ref, close: st.Close}, nil
	}

	st, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}
	return &session{svc: c.newService(st), projectID: ref, close: st.Close}, nil
}

// loadProject returns the project a reference points to.
func (c *CLI) loadProject(ctx context.Context, ref string) (*drawing.Project, error) {
	s, err := c.openSession(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer s.close()
	return s.svc.Get(ctx, s.projectID)
}

// FormatError formats a coded error for the terminal.
func FormatError(err error) string {
	if code := errors.GetCode(err); code != "" {
		return string(code) + ": " + errors.UserMessage(err)
	}
	return err.Error()
}
