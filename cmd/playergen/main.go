// playergen emits a player skeleton with the requested capability methods,
// ready to register with a Space. The output is run through goimports-style
// formatting, so the import block matches the chosen capabilities.
//
//	playergen -name Sparkle -caps animate,resize -o sparkle.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const skeletonTemplate = `package {{.Package}}

import (
	"github.com/plus3/framespace/space"
)

// {{.Name}} is a Space player.
type {{.Name}} struct {
}

{{if .Animate}}
// Animate runs once per frame. Returning a non-nil error stops the loop.
func (p *{{.Name}}) Animate(now, ft float64, s *space.Space) error {
	return nil
}
{{end}}
{{if .Resize}}
// Resize is called whenever the space's bound changes.
func (p *{{.Name}}) Resize(size space.Pt, ev space.Event) {
}
{{end}}
{{if .Action}}
// Action receives input actions dispatched by the surface binding.
func (p *{{.Name}}) Action(kind string, x, y float64, ev space.Event) {
}
{{end}}
{{if .Start}}
// Start is called once, when the space's bound first becomes known.
func (p *{{.Name}}) Start(bound space.Bound, s *space.Space) {
}
{{end}}
`

type skeleton struct {
	Package string
	Name    string
	Animate bool
	Resize  bool
	Action  bool
	Start   bool
}

func main() {
	name := flag.String("name", "", "Type name of the generated player (required).")
	pkg := flag.String("pkg", "main", "Package name for the generated file.")
	caps := flag.String("caps", "animate", "Comma-separated capabilities: animate,resize,action,start.")
	out := flag.String("o", "", "Output file. Defaults to stdout.")
	flag.Parse()

	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	sk := skeleton{Package: *pkg, Name: *name}
	for _, c := range strings.Split(*caps, ",") {
		switch strings.TrimSpace(c) {
		case "animate":
			sk.Animate = true
		case "resize":
			sk.Resize = true
		case "action":
			sk.Action = true
		case "start":
			sk.Start = true
		case "":
		default:
			log.Fatalf("unknown capability %q", c)
		}
	}
	if !sk.Animate && !sk.Resize && !sk.Action && !sk.Start {
		log.Fatal("at least one capability is required")
	}

	tmpl, err := template.New("skeleton").Parse(skeletonTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sk); err != nil {
		log.Fatalf("render skeleton: %v", err)
	}

	filename := *out
	if filename == "" {
		filename = strings.ToLower(*name) + ".go"
	}
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format skeleton: %v", err)
	}

	if *out == "" {
		fmt.Print(string(formatted))
		return
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}
