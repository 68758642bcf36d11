package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/openapi"
)

const schemaVersion = "1.0.0"

// defaultSchemaTypes skips point-table, which shares the Point component name.
var defaultSchemaTypes = []string{"card", "point"}

func newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [type...]",
		Short: "Print the OpenAPI components for one or more types",
		Long:  "schema exports the resolved fields of each type as an OpenAPI 3 document. With no arguments the card and point types are exported.",
		RunE:  runSchema,
	}
	cmd.Flags().StringP("output", "o", "json", "output format (json, yaml)")
	cmd.Flags().String("title", "formbind", "document title")
	cmd.Flags().String("overlay", "", "UI overlay file or directory (defaults to the bundled overlays)")
	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported --output %q (json, yaml)", format)
	}
	if len(args) == 0 {
		args = defaultSchemaTypes
	}

	types := make([]*model.Type, 0, len(args))
	for _, name := range args {
		typ, err := lookupType(name)
		if err != nil {
			return err
		}
		types = append(types, typ)
	}

	store, err := loadOverlay(cmd)
	if err != nil {
		return err
	}
	title, _ := cmd.Flags().GetString("title")
	doc, err := openapi.Document(cmd.Context(), title, schemaVersion, types, openapi.Options{
		Labeler:    model.HumanLabel,
		Decorators: []model.Decorator{store},
	})
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), format, doc)
}
