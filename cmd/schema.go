package cmd

import (
	"encoding/json"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(snapshotSchema()))
	},
}

func snapshotSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return filepath.Base(t.PkgPath()) + "." + t.Name()
	}

	return reflector.Reflect(&tvshows.Snapshot{})
}
