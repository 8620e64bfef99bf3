package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/pipeline"
)

var previewJSON bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what run would mail, without mailing or persisting",
	RunE:  previewAction,
}

func init() {
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "emit the new items as JSON")
	rootCmd.AddCommand(previewCmd)
}

func previewAction(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	res, err := p.Preview(cmd.Context())
	if err != nil {
		return err
	}

	if previewJSON {
		return printPreviewJSON(os.Stdout, res)
	}
	printPreview(os.Stdout, res)
	return nil
}

type jsonPreviewOutput struct {
	Feed  string            `json:"feed"`
	Items []jsonPreviewItem `json:"items"`
}

type jsonPreviewItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	PubDate     string `json:"pub_date,omitempty"`
}

func printPreviewJSON(w io.Writer, res pipeline.Result) error {
	out := jsonPreviewOutput{
		Feed:  res.FeedTitle,
		Items: make([]jsonPreviewItem, 0, len(res.Items)),
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, jsonPreviewItem{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Author:      it.Author,
			PubDate:     it.PubDate,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printPreview(w io.Writer, res pipeline.Result) {
	if len(res.Items) == 0 {
		fmt.Fprintln(w, "No new items.")
		return
	}

	fmt.Fprintf(w, "%s — %d new item(s):\n\n", res.FeedTitle, len(res.Items))
	for _, it := range res.Items {
		fmt.Fprintf(w, "  - %s", it.Title)
		if it.PubDate != "" {
			fmt.Fprintf(w, "  (%s)", it.PubDate)
		}
		fmt.Fprintln(w)
		if it.Link != "" {
			fmt.Fprintf(w, "    %s\n", it.Link)
		}
	}
}
