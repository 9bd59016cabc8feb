package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UzairRan/studymind-cli/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf> [more.pdf ...]",
	Short: "Upload PDF study notes for processing",
	Long: `Upload one or more PDF files to the backend in a single batch. Files are
validated client-side (PDF only, 200 MB per-file limit) before anything is
sent; the whole batch succeeds or fails as a unit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, rejected := upload.Select(args)
		for _, r := range rejected {
			fmt.Printf("✗ Skipped %s: %s\n", r.Name, r.Reason)
		}
		if len(files) == 0 {
			return fmt.Errorf("no valid PDF files to upload")
		}

		fmt.Printf("Uploading %d file(s) to %s ...\n", len(files), baseURL())
		ctx, cancel := requestContext()
		defer cancel()
		res, err := newClient().Upload(ctx, files)
		if err != nil {
			return err
		}

		for _, d := range upload.Describe(files, "processed") {
			fmt.Printf("✓ %s (%s)\n", d.Name, d.Size)
		}
		fmt.Printf("\n%s\n", res.Message)
		fmt.Printf("Document ID: %s, chunks: %d\n", res.DocumentID, res.NumChunks)
		if len(res.Chapters) > 0 {
			fmt.Printf("Chapters detected: %s\n", strings.Join(res.Chapters, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
