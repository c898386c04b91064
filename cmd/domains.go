/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/josephgoksu/thinkwing/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var domainsJSON bool

// domainsCmd lists the vocabulary domains available to the tool.
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List known vocabulary domains",
	Long: `List the vocabulary domains the divergent-thinking tool recognizes,
including any added by vocabulary packs in the configured packs directory.
Unknown domains are still accepted by the tool; they fall back to the
generic vocabulary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lookup := domain.New()
		packsDir := GetPacksDir()
		if err := lookup.LoadPacks(afero.NewOsFs(), packsDir); err != nil {
			return fmt.Errorf("load vocabulary packs from %s: %w", packsDir, err)
		}

		names := lookup.Domains()
		if domainsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(names)
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.Flags().BoolVar(&domainsJSON, "json", false, "output as JSON")
}
