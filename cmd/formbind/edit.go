package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/surface"
	"github.com/goliatone/go-formbind/pkg/surface/bubble"
	"github.com/goliatone/go-formbind/pkg/surface/prompt"
	"github.com/goliatone/go-formbind/pkg/uischema"
)

// runner is a host whose UI loop runs on the calling goroutine.
type runner interface {
	surface.Host
	Run(ctx context.Context) error
}

// hostFactory picks the surface host for an edit session from the flags.
type hostFactory func(cmd *cobra.Command) (runner, error)

func newEditCommand(hosts hostFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <type>",
		Short: "Open a form for a type and print the collected values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, hosts)
		},
	}
	cmd.Flags().String("surface", envOr("FORMBIND_SURFACE", "prompt"), "input surface (prompt, tui)")
	cmd.Flags().String("overlay", "", "UI overlay file or directory (defaults to the bundled overlays)")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	cmd.Flags().Bool("human-labels", true, "derive labels from field names when no label is set")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string, hosts hostFactory) error {
	typ, err := lookupType(args[0])
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	store, err := loadOverlay(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("output")
	if !validFormat(format) {
		return fmt.Errorf("unsupported --output %q", format)
	}

	host, err := hosts(cmd)
	if err != nil {
		return err
	}

	options := []form.Option{form.WithLogger(logger), form.WithOverlay(store)}
	if human, _ := cmd.Flags().GetBool("human-labels"); human {
		options = append(options, form.WithLabeler(model.HumanLabel))
	}
	engine, err := form.Open(host, typ, options...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	waitCtx, cancelWait := context.WithCancel(ctx)
	defer cancelWait()

	type result struct {
		items []any
		err   error
	}
	done := make(chan result, 1)
	go func() {
		items, err := engine.WaitForCompletion(waitCtx)
		done <- result{items, err}
	}()

	if err := host.Run(ctx); err != nil {
		cancelWait()
		<-done
		return err
	}

	res := <-done
	if res.err != nil {
		return res.err
	}
	return writeItems(cmd.OutOrStdout(), format, engine.Fields(), res.items)
}

func newHost(cmd *cobra.Command) (runner, error) {
	name, _ := cmd.Flags().GetString("surface")
	switch name {
	case "prompt":
		return prompt.NewHost(), nil
	case "tui":
		return bubble.NewHost(tea.WithAltScreen(), tea.WithOutput(cmd.ErrOrStderr())), nil
	default:
		return nil, fmt.Errorf("unsupported --surface %q (prompt, tui)", name)
	}
}

func loadOverlay(cmd *cobra.Command) (*uischema.Store, error) {
	path, _ := cmd.Flags().GetString("overlay")
	if path == "" {
		return uischema.LoadFS(uischema.EmbeddedFS())
	}
	return uischema.LoadPath(path)
}
