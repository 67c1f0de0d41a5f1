package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	root     bool
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"nussinov":       {true, "nussinov", 0, ""},
	"nussinov_fold":  {false, "fold", 0, "nussinov"},
	"nussinov_score": {false, "score", 1, "nussinov"},
	"nussinov_serve": {false, "serve", 2, "nussinov"},
}

// docsCmd writes Markdown docs for every command. Hidden, it's for building the site
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Write Markdown documentation for each command",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
	},
}

// set flags
func init() {
	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the docs to")

	RootCmd.AddCommand(docsCmd)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	m, ok := metaMap[base]
	switch {
	case !ok:
		return ""
	case m.root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	default:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	}
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "nussinov" {
		return "/"
	}
	return base
}
