package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gyorgy-s/our-blog-webapp/internal/core/domain"
	"github.com/spf13/cobra"
)

var seedAuthor string

// seedCmd loads demo posts from a data file: groups of three lines, in
// the order title, subtitle, body.
var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load demo posts from a data file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read data file: %w", err)
		}

		lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
		if len(lines)%3 != 0 {
			return fmt.Errorf("data file must hold groups of 3 lines (title, subtitle, body), got %d lines", len(lines))
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Stagger dates so the listing order is stable
		base := time.Now().Add(-time.Duration(len(lines)/3) * time.Second)

		for i := 0; i < len(lines); i += 3 {
			post := &domain.Post{
				Title:    lines[i],
				Subtitle: lines[i+1],
				Body:     lines[i+2],
				Author:   seedAuthor,
				Date:     base.Add(time.Duration(i/3) * time.Second),
			}
			if err := services.PostRepo.Create(cmd.Context(), post); err != nil {
				return fmt.Errorf("failed to create post %q: %w", post.Title, err)
			}
			fmt.Printf("Created post %d: %s\n", post.ID, post.Title)
		}

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAuthor, "author", "Axy", "author name for the seeded posts")
	rootCmd.AddCommand(seedCmd)
}
