package main

import (
	"os"
	"path/filepath"

	"github.com/egeuysall/summit-token/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	docDir := filepath.Join("./", os.Args[1])

	cmd := cli.NewSummitTokenCLI()
	cmd.DisableAutoGenTag = true

	err := doc.GenMarkdownTreeCustom(cmd, docDir, filePrepender(docDir), linkHandler)
	if err != nil {
		panic(err)
	}

	header := &doc.GenManHeader{
		Title:   "SUMMIT-TOKEN",
		Section: "1",
		Source:  "summit-token",
	}
	err = doc.GenManTree(cmd, header, docDir)
	if err != nil {
		panic(err)
	}
}

func filePrepender(docDir string) func(string) string {
	return func(file string) string {
		return "---\ntitle: \"\"\n---\n"
	}
}

func linkHandler(link string) string {
	return "./" + link
}
