package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	gadget "github.com/grindlemire/go-gadget"
	"github.com/grindlemire/go-gadget/internal/debug"
	"github.com/grindlemire/go-gadget/widget"
)

// runDesktop implements the run subcommand.
// It drives the demo scene on the terminal until the user quits or the
// process is interrupted.
func runDesktop(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fps := fs.Int("fps", 60, "Repaint rate in frames per second")
	logPath := fs.String("debug", "", "Path to debug log file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return err
		}
	}
	defer debug.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("run needs a terminal on stdout; use snapshot to render to a file")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	reader := gadget.NewScreenEventReader(screen)
	defer reader.Close()

	var app *gadget.App
	quit := func(gadget.KeyEvent) { app.Stop() }
	keys := gadget.KeyMap{
		gadget.OnKeyStop(gadget.KeyEscape, quit),
		gadget.OnKeyStop(gadget.KeyCtrlC, quit),
		gadget.OnRuneStop('q', quit),
	}

	theme := widget.DefaultTheme
	app, err = gadget.NewApp(gadget.NewScreenSurface(screen),
		gadget.WithFrameRate(*fps),
		gadget.WithEventReader(reader),
		gadget.WithRootBehavior(gadget.Fill{Color: theme.Desktop}),
		gadget.WithKeyMap(keys),
	)
	if err != nil {
		return err
	}

	s, err := buildScene(app, theme, terminalGrid)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Stop ends Run without an error; cancel releases the clock
		defer cancel()
		if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				app.QueueUpdate(func() {
					s.tick(app, now)
				})
			}
		}
	})
	return g.Wait()
}
