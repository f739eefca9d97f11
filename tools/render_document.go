// Command render_document renders an exported document JSON to HTML on
// disk, without starting the server. Useful for eyeballing template
// changes. With no argument it renders the default document.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ekosiswoyo/cv-generator/internal/export"
	"github.com/ekosiswoyo/cv-generator/internal/model"
	"github.com/ekosiswoyo/cv-generator/internal/render"
)

func main() {
	doc := model.Default()
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "read document: %v\n", err)
			os.Exit(2)
		}
		doc, err = export.Unmarshal(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse document: %v\n", err)
			os.Exit(2)
		}
	}

	html, err := render.HTML(render.Compose(doc, render.Options{}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := export.DocumentTitle(doc, time.Now().Year()) + ".html"
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
