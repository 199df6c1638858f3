package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var listTagCode string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List monsters in the database",
	Long:  `List every monster record, or only those carrying a given tag code.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTagCode, "tag", "", "Only list monsters carrying this tag code")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.ListMonsters(ctx, &monstersvc.ListMonstersInput{TagCode: listTagCode})
	if err != nil {
		return fmt.Errorf("failed to list monsters: %w", err)
	}

	if len(output.Monsters) == 0 {
		fmt.Printf("No monsters found\n")
		return nil
	}

	for _, mon := range output.Monsters {
		role := mon.Role
		if role == "" {
			role = "-"
		}
		fmt.Printf("%-14s %-10s %-4s %-12s %s\n", mon.ID, mon.Name, mon.Element, role, formatTags(mon.Tags))
	}
	fmt.Printf("\n%d monster(s)\n", len(output.Monsters))
	return nil
}
