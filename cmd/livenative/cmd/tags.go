package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/livenative/pkg/core"
	_ "github.com/go-drift/livenative/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tags",
		Short: "List the registered tags and their slot roles",
		Long: `List every tag the renderer understands, with the slot roles its
children can fill.

Usage:
  livenative tags`,
		Usage: "livenative tags",
		Run:   runTags,
	})
}

func runTags(env *Env, args []string) error {
	for _, tag := range core.DefaultRegistry.Tags() {
		entry, _ := core.DefaultRegistry.Lookup(tag)
		fmt.Fprintln(env.Stdout, tag)
		for _, role := range entry.Roles {
			var parts []string
			if role.Exclusive {
				parts = append(parts, "exclusive")
			}
			if len(role.Tags) > 0 {
				parts = append(parts, "tags "+strings.Join(role.Tags, ","))
			}
			if len(role.Templates) > 0 {
				parts = append(parts, "templates "+strings.Join(role.Templates, ","))
			}
			fmt.Fprintf(env.Stdout, "  role %s (%s)\n", role.Name, strings.Join(parts, "; "))
		}
	}
	return nil
}
