package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/internal/samples"
	"github.com/goliatone/go-formbind/pkg/model"
)

// sampleTypes lists the types the CLI can edit.
var sampleTypes = map[string]func() (*model.Type, error){
	"point": func() (*model.Type, error) {
		return formbind.Reflect[samples.Point]()
	},
	"point-table": func() (*model.Type, error) {
		return samples.PointType, nil
	},
	"card": func() (*model.Type, error) {
		return formbind.Reflect[samples.Card]()
	},
}

func lookupType(name string) (*model.Type, error) {
	build, ok := sampleTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (available: %s)", name, strings.Join(typeNames(), ", "))
	}
	return build()
}

func typeNames() []string {
	names := make([]string, 0, len(sampleTypes))
	for name := range sampleTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the editable types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range typeNames() {
				typ, err := lookupType(name)
				if err != nil {
					return err
				}
				fields, err := model.Resolve(typ)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s (%d fields)\n", name, typ.Name, len(fields))
			}
			return nil
		},
	}
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", raw, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}
