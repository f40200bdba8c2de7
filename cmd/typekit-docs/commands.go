package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/typekit/pkg/docs"
	"github.com/arthur-debert/typekit/pkg/docs/styles"
	"github.com/arthur-debert/typekit/pkg/errors"
)

var (
	genOutputDir string
	genDryRun    bool
	genNoFigures bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the reference pages and figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := docs.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if genOutputDir != "" {
			cfg.OutputDir = genOutputDir
		}
		if genNoFigures {
			cfg.Figures = false
		}

		site, err := docs.Reference(cfg)
		if err != nil {
			return err
		}

		paths, err := docs.Write(site, cfg.OutputDir, genDryRun)
		if err != nil {
			return err
		}

		for _, path := range paths {
			if genDryRun {
				fmt.Println(styles.Render("DryRun", "would write ") + path)
			} else {
				fmt.Println(styles.Render("Success", "wrote ") + path)
			}
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview PAGE",
	Short: "Render a generated page to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := docs.LoadConfig(configPath)
		if err != nil {
			return err
		}

		site, err := docs.Reference(cfg)
		if err != nil {
			return err
		}

		page, ok := site.Page(args[0])
		if !ok {
			return errors.Newf(errors.ErrNotFound, "no such page %q", args[0])
		}

		rendered, err := docs.Preview(page, cfg.PreviewStyle)
		if err != nil {
			return err
		}

		fmt.Print(rendered)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pages and figures that gen produces",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := docs.LoadConfig(configPath)
		if err != nil {
			return err
		}

		site, err := docs.Reference(cfg)
		if err != nil {
			return err
		}

		for _, page := range site.Pages {
			fmt.Println(styles.Render("PageName", page.Name) + "  " + styles.Render("Muted", page.Title))
		}
		for _, fig := range site.Figures {
			fmt.Println(styles.Render("PageName", fig.Name) + "  " + styles.Render("Muted", "figure"))
		}
		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOutputDir, "output", "o", "", "Output directory (overrides typekit.toml)")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Preview what would be written without writing")
	genCmd.Flags().BoolVar(&genNoFigures, "no-figures", false, "Skip SVG figure generation")
}
