package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var documentsSessionYear int

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Query ingested documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [type] [number] [session-year]",
	Short: "Show one document with sponsors and actions",
	Args:  cobra.ExactArgs(3),
	RunE:  runDocumentsShow,
}

func init() {
	documentsListCmd.Flags().IntVar(&documentsSessionYear, "session-year", 0, "filter by session year")
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentStore == nil {
		return errors.New("document store not configured")
	}

	ctx := context.Background()

	docs, err := documentStore.List(ctx, documentsSessionYear)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s %d (%d)\n", docs[i].DocType, docs[i].Number, docs[i].SessionYear)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentStore == nil {
		return errors.New("document store not configured")
	}

	docType := args[0]
	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid document number %q", args[1])
	}
	sessionYear, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid session year %q", args[2])
	}

	ctx := context.Background()

	doc, err := documentStore.Get(ctx, docType, number, sessionYear)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s %d (%d)\n\n", doc.DocType, doc.Number, doc.SessionYear)
	cmd.Printf("  Title:     %s\n", doc.Title)
	cmd.Printf("  Congress:  %d\n", doc.Provenance.Congress)
	cmd.Printf("  Source:    %s\n", doc.Provenance.Source)
	cmd.Printf("  Published: %s\n", doc.Provenance.Published.Format("2006-01-02"))
	cmd.Printf("  Updated:   %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(doc.Sponsors) > 0 {
		cmd.Println("\n  Sponsors:")
		for _, s := range doc.Sponsors {
			cmd.Printf("    %s (%s-%s)\n", s.Name, s.Party, s.State)
		}
	}

	if len(doc.Actions) > 0 {
		cmd.Println("\n  Actions:")
		for _, a := range doc.Actions {
			cmd.Printf("    %s  %-18s %s\n", a.Date.Format("2006-01-02"), a.Type, a.Text)
		}
	}

	return nil
}
