package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-drift/livenative/pkg/event"
)

func init() {
	RegisterCommand(&Command{
		Name:  "push",
		Short: "Print the payload pushed for an event",
		Long: `Print the JSON payload the server receives for an interaction.

The value is parsed as JSON when it is valid JSON and sent as a string
otherwise. --target sets the component id (cid).

Usage:
  livenative push click inc
  livenative push change volume 0.5
  livenative push keyup search '{"key":"a","value":"a"}' --target 3`,
		Usage: "livenative push <kind> <name> [value] [--target cid]",
		Run:   runPush,
	})
}

func runPush(env *Env, args []string) error {
	var target string
	var positional []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--target":
			if i+1 >= len(args) {
				return fmt.Errorf("--target requires a component id")
			}
			target = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--target="):
			target = strings.TrimPrefix(args[i], "--target=")
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) < 2 || len(positional) > 3 {
		return fmt.Errorf("kind and name are required\n\nUsage: livenative push <kind> <name> [value] [--target cid]")
	}

	kind, ok := event.ParseKind(positional[0])
	if !ok {
		return fmt.Errorf("unknown event kind %q", positional[0])
	}
	e := event.Event{Kind: kind, Name: positional[1], Target: target}
	if len(positional) == 3 {
		e.Value = parseValue(positional[2])
	}

	data, err := event.Encode(e)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, string(data))
	return nil
}

func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}
