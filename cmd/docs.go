package cmd

import (
	"fmt"
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

// docType codes whether the command is the root or a child
type docType int

const (
	root docType = iota
	child
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType  docType
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"clonecheck":          {root, "clonecheck", 0, ""},
	"clonecheck_cluster":  {child, "cluster", 0, "clonecheck"},
	"clonecheck_tiers":    {child, "tiers", 1, "clonecheck"},
	"clonecheck_settings": {child, "settings", 2, "clonecheck"},
}

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := makeDocs(dir); err != nil {
			stderr.Fatalln(err)
		}
	},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	rootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "clonecheck" {
		return "/"
	}
	return base
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
