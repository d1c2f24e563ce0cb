package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/livenative/pkg/changeable"
	"github.com/go-drift/livenative/pkg/loop"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render a document whenever it changes",
		Long: `Render a document, then render it again every time the file is written.

Bursts of writes (editors often save in several steps) are coalesced using
the events.debounce window of livenative.yaml. Press Ctrl+C to stop.

Usage:
  livenative watch page.lvn`,
		Usage: "livenative watch <file>",
		Run:   runWatch,
	})
}

func runWatch(env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a file is required\n\nUsage: livenative watch <file>")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, env, args[0])
}

// watch renders path on a UI loop and re-renders on change until ctx is done.
func watch(ctx context.Context, env *Env, path string) error {
	path = filepath.Clean(path)
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	// Watch the directory; editors often replace the file instead of writing it.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	l := loop.New()
	defer l.Install()()
	s := newSurface(env, nil, l)
	defer s.Unmount()
	logger := env.Config.Logger(env.Stderr)

	rerender := func() {
		fmt.Fprintf(env.Stdout, "--- %s %s\n", time.Now().Format(time.TimeOnly), path)
		if err := render(env.Stdout, s, path); err != nil {
			fmt.Fprintf(env.Stdout, "error: %v\n", err)
		}
	}
	changes := changeable.New(0, changeable.Options[int]{
		Timing:    changeable.Timing{Policy: changeable.Debounce, Window: env.Config.Defaults.Debounce},
		Scheduler: l,
		Emit:      func(int) { rerender() },
	})
	defer changes.Dispose()

	l.Post(rerender)
	// File events arrive on the watcher's goroutine and cross to the loop
	// through Dispatch; a stopped loop ends the forwarding.
	go func() {
		seq := 0
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				seq++
				n := seq
				if !loop.Dispatch(func() { changes.Set(n) }) {
					return
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "err", err)
			}
		}
	}()

	if err := l.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
