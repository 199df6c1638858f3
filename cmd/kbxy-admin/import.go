package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	importLimit int
	importKeys  []string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import monsters from the bestiary source",
	Long: `Pull monsters from the configured bestiary API, convert them into
monster records and run a derivation pass over each. Records whose source
key was already imported are skipped.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVar(&importLimit, "limit", 0, "Cap the pull at N monsters (0 means everything)")
	importCmd.Flags().StringArrayVar(&importKeys, "key", nil, "Import only this source key (repeatable)")
}

func runImport(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.ImportMonsters(ctx, &monstersvc.ImportMonstersInput{
		Limit: importLimit,
		Keys:  importKeys,
	})
	if err != nil {
		return fmt.Errorf("failed to import monsters: %w", err)
	}

	fmt.Printf("✅ Import finished\n")
	fmt.Printf("   Imported: %d\n", output.Imported)
	fmt.Printf("   Skipped:  %d\n", output.Skipped)
	fmt.Printf("   Failures: %d\n", len(output.Failures))
	for _, failure := range output.Failures {
		fmt.Printf("     %s: %s\n", failure.Key, failure.Message)
	}
	return nil
}
