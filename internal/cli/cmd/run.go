package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/spf13/cobra"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/cli"
	"github.com/bnema/dumber-overlay/internal/infrastructure/config"
	"github.com/bnema/dumber-overlay/internal/infrastructure/ipc"
	"github.com/bnema/dumber-overlay/internal/infrastructure/webkit"
	"github.com/bnema/dumber-overlay/internal/logging"
	"github.com/bnema/dumber-overlay/internal/ui/dialog"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
	"github.com/bnema/dumber-overlay/internal/ui/mainloop"
	"github.com/bnema/dumber-overlay/internal/ui/mainloop/glibloop"
	"github.com/bnema/dumber-overlay/internal/ui/theme"
	"github.com/bnema/dumber-overlay/internal/ui/window"
)

const applicationID = "com.github.bnema.dumber-overlay"

var (
	runShow       string
	runContentURL string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the host window with the configured dialogs",
	Long: `Open a GTK window and create one overlay dialog per [dialogs.<name>] table.

--content-url loads a page as the window content. It receives
"dialog-visibility-change" messages and may post "tab-selected" and
"dialog-tab" ({"dialog", "tabId", "open"}).
Escape hides every dialog.

Examples:
  dumber-overlay run --show menu
  dumber-overlay run --content-url http://localhost:4444/shell.html`,
	Args: cobra.NoArgs,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runShow, "show", "", "show this dialog once it has loaded")
	runCmd.Flags().StringVar(&runContentURL, "content-url", "", "page loaded as the window content")
}

func runOverlay(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if runShow != "" {
		if _, ok := a.Config.Dialog(runShow); !ok {
			return fmt.Errorf("dialog %q is not configured", runShow)
		}
	}

	runtime.LockOSThread()
	ctx := logging.WithComponent(a.Context(), "run")
	log := logging.FromContext(ctx)

	gtkApp := gtk.NewApplication(applicationID, gio.ApplicationNonUnique)

	var shell *overlayShell
	gtkApp.ConnectActivate(func() {
		var err error
		shell, err = newOverlayShell(ctx, a, gtkApp)
		if err != nil {
			log.Error().Err(err).Msg("failed to start overlay shell")
			gtkApp.Quit()
		}
	})
	gtkApp.ConnectShutdown(func() {
		if shell != nil {
			shell.close(ctx)
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		glibloop.Post(gtkApp.Quit)
	}()

	if code := gtkApp.Run(os.Args[:1]); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}
	return nil
}

// overlayShell is the running host window and its dialogs.
type overlayShell struct {
	win      *window.MainWindow
	surfaces *webkit.SurfaceFactory
	host     *webkit.HostWindow
	dialogs  *dialog.Manager
	content  port.Surface
}

func newOverlayShell(ctx context.Context, a *cli.App, gtkApp *gtk.Application) (*overlayShell, error) {
	log := logging.FromContext(ctx)

	urls, err := a.ContentURLs()
	if err != nil {
		return nil, err
	}

	router := webkit.NewMessageRouter(ctx)
	bus := ipc.NewBus()
	if err := webkit.RegisterHideRequests(router, bus); err != nil {
		return nil, err
	}

	widgets := layout.NewGtkWidgetFactory()
	surfaces := webkit.NewSurfaceFactory(widgets, router)

	s := &overlayShell{surfaces: surfaces}
	var base layout.Widget
	if runContentURL != "" {
		content, err := surfaces.NewSurface(ctx, port.SurfaceConfig{Privileged: true})
		if err != nil {
			return nil, fmt.Errorf("create window content: %w", err)
		}
		if err := content.LoadURI(ctx, runContentURL); err != nil {
			content.Destroy()
			return nil, fmt.Errorf("load window content: %w", err)
		}
		s.content = content
		base = content.(*webkit.Surface).Widget()
	}

	stack := layout.NewOverlayStack(ctx, widgets, base)
	s.host = webkit.NewHostWindow(ctx, stack, s.content)
	if err := s.host.RegisterTabSelection(router); err != nil {
		return nil, err
	}

	s.dialogs, err = dialog.NewManager(s.host, dialog.Deps{
		Surfaces:  surfaces,
		Bus:       bus,
		Scheduler: mainloop.NewTimerScheduler(glibloop.Post),
		URLs:      urls,
	}, glibloop.Post)
	if err != nil {
		return nil, err
	}

	if err := s.host.RegisterDialogTabs(router, s.dialogs); err != nil {
		return nil, err
	}

	theme.ApplyToDisplay(ctx, theme.DefaultDarkPalette())
	s.win, err = window.New(ctx, gtkApp, stack.Widget())
	if err != nil {
		return nil, err
	}
	s.win.OnEscape(func() {
		if err := s.dialogs.HideAll(ctx); err != nil {
			log.Debug().Err(err).Msg("hide all failed")
		}
	})

	for _, name := range a.Config.DialogNames() {
		d, _ := a.Config.Dialog(name)
		if _, err := s.dialogs.Open(ctx, dialog.Options{
			Name:      name,
			DevTools:  d.DevTools,
			Bounds:    d.Bounds(),
			HideGrace: d.HideGrace(),
		}); err != nil {
			log.Error().Err(err).Str("dialog", name).Msg("failed to open dialog")
		}
	}

	a.ConfigManager.OnConfigChange(func(next *config.Config) {
		glibloop.Post(func() { s.reconfigure(ctx, next) })
	})
	if err := a.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	s.win.Show()

	if runShow != "" {
		if c, ok := s.dialogs.Get(runShow); ok {
			if _, err := c.Show(ctx, true, true); err != nil {
				log.Warn().Err(err).Str("dialog", runShow).Msg("failed to show dialog")
			}
		}
	}

	log.Info().
		Str("mode", string(urls.Mode())).
		Strs("dialogs", s.dialogs.Names()).
		Msg("overlay shell started")
	return s, nil
}

// reconfigure applies geometry and grace changes from a reloaded config.
// Dialogs added or removed in the file take effect on the next run.
func (s *overlayShell) reconfigure(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)
	for _, name := range cfg.DialogNames() {
		d, _ := cfg.Dialog(name)
		if err := s.dialogs.Reconfigure(ctx, name, d.Bounds(), d.HideGrace()); err != nil {
			log.Debug().Err(err).Str("dialog", name).Msg("config change not applied")
		}
	}
}

func (s *overlayShell) close(ctx context.Context) {
	if err := s.dialogs.Close(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close dialogs")
	}
	if n := s.surfaces.DestroyAll(); n > 0 {
		logging.FromContext(ctx).Debug().Int("surfaces", n).Msg("released remaining surfaces")
	}
}
