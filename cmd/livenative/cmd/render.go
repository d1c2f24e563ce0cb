package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/livenative/pkg/core"
	"github.com/go-drift/livenative/pkg/event"
	"github.com/go-drift/livenative/pkg/loop"
	"github.com/go-drift/livenative/pkg/markup"
	"github.com/go-drift/livenative/pkg/node"
	"github.com/go-drift/livenative/pkg/surface"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Print the resolved tree of a document",
		Long: `Resolve a document against the built-in widgets and print the tree.

The file is read as markup unless its extension is .yaml or .yml, in which
case it is read as a YAML fixture. Subtrees that fail to resolve are shown
as placeholders (or left out when livenative.yaml sets placeholder: false)
and every failure is listed after the tree.

Usage:
  livenative render page.lvn
  livenative render fixtures/card.yaml`,
		Usage: "livenative render <file>",
		Run:   runRender,
	})
}

func runRender(env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a file is required\n\nUsage: livenative render <file>")
	}
	s := newSurface(env, nil, nil)
	defer s.Unmount()
	return render(env.Stdout, s, args[0])
}

// newSurface returns a surface configured from env.
func newSurface(env *Env, sink event.Sink, sched loop.Scheduler) *surface.Surface {
	logger := env.Config.Logger(env.Stderr)
	scope := core.NewScope(sink, sched)
	scope.Defaults = env.Config.Defaults
	scope.Logger = logger
	return surface.New(surface.Options{
		Policy:          env.Config.Policy,
		Scope:           scope,
		ProtocolVersion: env.Config.ProtocolVersion,
		Logger:          logger,
	})
}

// render mounts the document at path on s and prints the tree followed by
// the failures. It returns an error when anything failed.
func render(w io.Writer, s *surface.Surface, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	err = s.Mount(doc)
	if s.Root() == nil {
		return err
	}
	fmt.Fprint(w, s.Root())
	failed := failures(err)
	for _, f := range failed {
		fmt.Fprintf(w, "! %v\n", f)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%s: %d node(s) failed to resolve", path, len(failed))
	}
	return nil
}

func loadDocument(path string) (*markup.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		d, err := markup.DecodeYAML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &markup.Document{Nodes: []node.NodeDescriptor{d}}, nil
	default:
		doc, err := markup.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
}

// failures flattens a joined resolve error into its parts.
func failures(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, failures(e)...)
		}
		return out
	}
	return []error{err}
}
