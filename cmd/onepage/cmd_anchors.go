package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"onepage/internal/location"
)

func runAnchors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	path, _ := location.ParseTarget(args[0])
	doc, err := loadDocument(path, cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tANCHOR\tTITLE")
	for i, s := range doc.Sections {
		anchor := "-"
		if s.Anchor != "" {
			anchor = "#" + s.Anchor
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, anchor, s.Title)
	}
	return tw.Flush()
}

func runGoto(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	path, fragment := location.ParseTarget(args[0])
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return fmt.Errorf("missing anchor: use %s#anchor", path)
	}

	doc, err := loadDocument(path, cfg)
	if err != nil {
		return err
	}
	if !hasAnchor(doc, fragment) {
		return fmt.Errorf("%s", strings.TrimPrefix(unknownAnchorMessage(doc, fragment), "onepage: "))
	}

	store, err := location.NewFileStore(resolveStatePath(cfg), path)
	if err != nil {
		return err
	}
	if err := store.PushFragment(fragment); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), location.Link(path, fragment))
	return nil
}

