package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	collectionCreateName string
	collectionCreateNote string
	collectionGetID      string
	collectionAddID      string
	collectionAddMonster string
	collectionRemID      string
	collectionRemMonster string
	collectionDeleteID   string
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage monster collections",
	Long:  `Manage named, ordered collections of monsters (team drafts, watchlists).`,
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every collection",
	RunE:  runCollectionsList,
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new collection",
	RunE:  runCollectionsCreate,
}

var collectionsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a collection with its member monsters",
	RunE:  runCollectionsGet,
}

var collectionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a monster to a collection",
	RunE:  runCollectionsAdd,
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a monster from a collection",
	RunE:  runCollectionsRemove,
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a collection",
	RunE:  runCollectionsDelete,
}

func init() {
	collectionsCreateCmd.Flags().StringVar(&collectionCreateName, "name", "", "Collection name")
	_ = collectionsCreateCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	collectionsCreateCmd.Flags().StringVar(&collectionCreateNote, "note", "", "Curator note")

	collectionsGetCmd.Flags().StringVar(&collectionGetID, "id", "", "Collection ID")
	_ = collectionsGetCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	collectionsAddCmd.Flags().StringVar(&collectionAddID, "id", "", "Collection ID")
	_ = collectionsAddCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
	collectionsAddCmd.Flags().StringVar(&collectionAddMonster, "monster", "", "Monster ID to add")
	_ = collectionsAddCmd.MarkFlagRequired("monster") // nolint:errcheck // safe to ignore in init

	collectionsRemoveCmd.Flags().StringVar(&collectionRemID, "id", "", "Collection ID")
	_ = collectionsRemoveCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
	collectionsRemoveCmd.Flags().StringVar(&collectionRemMonster, "monster", "", "Monster ID to remove")
	_ = collectionsRemoveCmd.MarkFlagRequired("monster") // nolint:errcheck // safe to ignore in init

	collectionsDeleteCmd.Flags().StringVar(&collectionDeleteID, "id", "", "Collection ID")
	_ = collectionsDeleteCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsCreateCmd)
	collectionsCmd.AddCommand(collectionsGetCmd)
	collectionsCmd.AddCommand(collectionsAddCmd)
	collectionsCmd.AddCommand(collectionsRemoveCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
}

func runCollectionsList(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.ListCollections(ctx, &monstersvc.ListCollectionsInput{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(output.Collections) == 0 {
		fmt.Printf("No collections found\n")
		return nil
	}

	for _, col := range output.Collections {
		fmt.Printf("%-14s %-12s %d member(s)\n", col.ID, col.Name, len(col.MonsterIDs))
	}
	fmt.Printf("\n%d collection(s)\n", len(output.Collections))
	return nil
}

func runCollectionsCreate(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.CreateCollection(ctx, &monstersvc.CreateCollectionInput{
		Name: collectionCreateName,
		Note: collectionCreateNote,
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	fmt.Printf("✅ Collection created\n")
	printCollection(output.Collection)
	return nil
}

func runCollectionsGet(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.GetCollection(ctx, &monstersvc.GetCollectionInput{CollectionID: collectionGetID})
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}

	fmt.Printf("✅ Collection\n")
	printCollection(output.Collection)
	if len(output.Members) == 0 {
		fmt.Printf("   Members: (none)\n")
		return nil
	}
	fmt.Printf("   Members:\n")
	for _, mon := range output.Members {
		fmt.Printf("     %-14s %-10s %s\n", mon.ID, mon.Name, mon.Role)
	}
	return nil
}

func runCollectionsAdd(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.AddToCollection(ctx, &monstersvc.AddToCollectionInput{
		CollectionID: collectionAddID,
		MonsterID:    collectionAddMonster,
	})
	if err != nil {
		return fmt.Errorf("failed to add to collection: %w", err)
	}

	fmt.Printf("✅ Monster added\n")
	printCollection(output.Collection)
	return nil
}

func runCollectionsRemove(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.RemoveFromCollection(ctx, &monstersvc.RemoveFromCollectionInput{
		CollectionID: collectionRemID,
		MonsterID:    collectionRemMonster,
	})
	if err != nil {
		return fmt.Errorf("failed to remove from collection: %w", err)
	}

	fmt.Printf("✅ Monster removed\n")
	printCollection(output.Collection)
	return nil
}

func runCollectionsDelete(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.DeleteCollection(ctx, &monstersvc.DeleteCollectionInput{CollectionID: collectionDeleteID})
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	fmt.Printf("✅ %s\n", output.Message)
	return nil
}

func printCollection(col *entities.Collection) {
	fmt.Printf("   ID:      %s\n", col.ID)
	fmt.Printf("   Name:    %s\n", col.Name)
	if col.Note != "" {
		fmt.Printf("   Note:    %s\n", col.Note)
	}
	fmt.Printf("   Size:    %d\n", len(col.MonsterIDs))
}
