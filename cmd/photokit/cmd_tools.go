package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shouni/gemini-photo-kit/pkg/domain"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "利用可能なツールと選択肢を表示する",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTools(cmd.OutOrStdout())
	},
}

func printTools(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMULTI\tDESCRIPTION")
	for _, t := range domain.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", t.ID, t.Name, t.MultiOutput, t.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printOptions(w, "id-photo --size", domain.IDPhotoSizes())
	printOptions(w, "id-photo --background", domain.IDPhotoBackgrounds())
	printOptions(w, "id-photo/headshot --aspect-ratio", domain.FrameRatios())
	printOptions(w, "product --aspect-ratio", domain.ProductRatios())
	printOptions(w, "headshot --background", domain.HeadshotBackgrounds())
	return nil
}

func printOptions[T ~string](w io.Writer, label string, values []T) {
	fmt.Fprintf(w, "%s:\n", label)
	for _, v := range values {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}
