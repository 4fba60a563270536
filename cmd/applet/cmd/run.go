package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/applet/internal/config"
	"github.com/go-drift/applet/internal/host"
	"github.com/go-drift/applet/internal/keyecho"
	"github.com/go-drift/applet/internal/logging"
	"github.com/go-drift/applet/pkg/assets"
	"github.com/go-drift/applet/pkg/errors"
	"github.com/go-drift/applet/pkg/scene"
)

// DefaultScript exercises every lifecycle edge and a spread of keys.
const DefaultScript = "load start key:d1 key:red key:menu key:info key:999 pause start destroy"

var runOpts struct {
	config    string
	script    string
	snapshot  string
	keepGoing bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the key-echo applet through a lifecycle script",
	Long: `Run hosts the key-echo applet described by applet.yaml and executes a
script of host steps against it.

Steps:
  load, start, pause     lifecycle requests
  destroy                unforced destroy (retried with force if the manifest allows)
  kill                   forced destroy
  key:<code|name>        deliver a key, e.g. key:403, key:red, key:d7, key:up

Without --config, applet.yaml is read from the current directory if present.`,
	Example: `  applet run
  applet run --config demo/applet.yaml --script "load start key:blue destroy"
  applet run --snapshot frame.png`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runOpts.config, "config", "c", "", "path to applet.yaml")
	f.StringVarP(&runOpts.script, "script", "s", DefaultScript, "host steps to execute")
	f.StringVar(&runOpts.snapshot, "snapshot", "", "write the last visible frame to this PNG file")
	f.BoolVar(&runOpts.keepGoing, "keep-going", false, "continue the script after a failed step")
	rootCmd.AddCommand(runCmd)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(dir)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runOpts.config)
	if err != nil {
		return err
	}
	if !logLevelSet(cmd) {
		logging.SetLevel(cfg.LogLevel())
	}

	steps, err := host.ParseScript(runOpts.script)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	screen := &recordingScreen{Screen: scene.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height}}
	rt := host.New(host.Options{
		AppletID:           cfg.Applet.ID,
		RetryForcedDestroy: cfg.Lifecycle.RetryForcedDestroy,
		KeepGoing:          runOpts.keepGoing,
	})
	loader := &assets.Loader{FS: os.DirFS(cfg.Assets.Dir), Timeout: cfg.Assets.Timeout}
	app := keyecho.New(keyecho.Options{
		Loader:  assets.NewCache(loader),
		Screen:  screen,
		Events:  rt,
		Logo:    cfg.Assets.Logo,
		Refuses: cfg.Lifecycle.RefuseUnforcedDestroy,
	})
	ctrl := rt.Install(app)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applet: %s (%s %s)\n", cfg.Applet.Name, cfg.Applet.ID, cfg.Applet.Version)
	runErr := rt.Run(ctx, steps)

	for _, k := range rt.Keys() {
		fmt.Fprintf(out, "  key %-4d -> %-16s %s\n", k.Code, k.Label, k.Highlight)
	}
	fmt.Fprintf(out, "Final state: %s\n", ctrl.State())

	if runOpts.snapshot != "" {
		if err := writeSnapshot(runOpts.snapshot, screen.last); err != nil {
			errors.Report(&errors.AppletError{Op: "cli.snapshot", Kind: errors.KindRender, Applet: cfg.Applet.ID, Err: err})
			if runErr == nil {
				runErr = err
			}
		} else {
			fmt.Fprintf(out, "Snapshot: %s\n", runOpts.snapshot)
		}
	}
	return runErr
}

func writeSnapshot(path string, frame *image.RGBA) error {
	if frame == nil {
		return fmt.Errorf("no visible frame was painted")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// recordingScreen keeps the last frame painted while the surface was
// visible, so a snapshot survives the applet hiding its surface on destroy.
type recordingScreen struct {
	scene.Screen
	last *image.RGBA
}

func (s *recordingScreen) CreateSurface() scene.Surface {
	return &recordingSurface{Scene: scene.New(s.Width, s.Height), screen: s}
}

type recordingSurface struct {
	*scene.Scene
	screen *recordingScreen
}

func (r *recordingSurface) Repaint() {
	r.Scene.Repaint()
	if r.Visible() {
		r.screen.last = r.Frame()
	}
}
