//go:build ignore

package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"
)

type coordType struct {
	Name string
	Base string
	Diff string
	Desc string
}

func (c coordType) Signed() bool { return c.Name == c.Diff }

var types = []coordType{
	{"Int8", "int8", "Int8", "an 8-bit signed"},
	{"Uint8", "uint8", "Int8", "an 8-bit unsigned"},
	{"Int16", "int16", "Int16", "a 16-bit signed"},
	{"Uint16", "uint16", "Int16", "a 16-bit unsigned"},
	{"Int32", "int32", "Int32", "a 32-bit signed"},
	{"Uint32", "uint32", "Int32", "a 32-bit unsigned"},
	{"Int64", "int64", "Int64", "a 64-bit signed"},
	{"Uint64", "uint64", "Int64", "a 64-bit unsigned"},
	{"Int", "int", "Int", "a word-sized signed"},
	{"Uint", "uint", "Int", "a word-sized unsigned"},
}

var tmpl = template.Must(template.New("coord").Parse(`// Code generated by mkcoord.go. DO NOT EDIT.

package coord

import "cmp"
{{range .}}
{{if .Signed -}}
// {{.Name}} is {{.Desc}} coordinate. It is its own difference type.
{{- else -}}
// {{.Name}} is {{.Desc}} coordinate. Its difference type is [{{.Diff}}].
{{- end}}
type {{.Name}} {{.Base}}

func (c {{.Name}}) Add(v {{.Name}}) {{.Name}} { return add(c, v) }

func (c {{.Name}}) Sub(v {{.Name}}) {{.Name}} { return sub(c, v) }

func (c {{.Name}}) Rem(v {{.Name}}) {{.Name}} { return c % v }

func (c {{.Name}}) Cmp(v {{.Name}}) int { return cmp.Compare(c, v) }

func ({{.Name}}) One() {{.Name}} { return 1 }

func (c {{.Name}}) Float32() float32 { return float32(c) }

func ({{.Name}}) FromFloat32(v float32) {{.Name}} { return truncate[{{.Name}}](v) }
{{if .Signed}}
func (c {{.Name}}) Diff() {{.Diff}} { return c }

func ({{.Name}}) FromDiff(d {{.Diff}}) {{.Name}} { return d }

func (c {{.Name}}) Sign() {{.Name}} { return sign(c) }

func (c {{.Name}}) Abs() {{.Name}} { return abs(c) }
{{else}}
func (c {{.Name}}) Diff() {{.Diff}} { return convert[{{.Diff}}](c) }

func ({{.Name}}) FromDiff(d {{.Diff}}) {{.Name}} { return convert[{{.Name}}](d) }
{{end}}{{end}}`))

func main() {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, types)
	if err != nil {
		log.Fatalf("execute template: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format source: %v", err)
	}

	err = os.WriteFile("coord_gen.go", src, 0644)
	if err != nil {
		log.Fatalf("write coord_gen.go: %v", err)
	}
}
