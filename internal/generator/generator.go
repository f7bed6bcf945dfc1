/*
Package generator is a generator for Unicode block range tables.

This is a generator for static Go range tables from the UCD companion file
"Blocks.txt". Blocks.txt is the definite source for Unicode block names.
The generator looks for it in a directory "$GOPATH/etc/", unless a path is
given on the command line.

Usage

The generator has one option, a "verbose" flag, plus an optional path
argument. It should usually be turned on.

   generator [-v] [path/to/Blocks.txt]

This creates a file "blockstables.go" in the current directory, declaring
one unicode.RangeTable per block as well as an index from block name to
table. Applications that want block membership tests without parsing
Blocks.txt at runtime may vendor the generated file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/ucdblocks"
)

var logger = log.New(os.Stderr, "Blocks generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Load the Unicode block definition file: Blocks.txt
func loadUnicodeBlocksFile(path string) (*ucdblocks.BlockTable, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading Blocks.txt")
	return ucdblocks.FromFile(path)
}

// collectTables walks the block table in input order and produces one
// tableCollector per block name, merging adjacent ranges that share a name.
func collectTables(table *ucdblocks.BlockTable) (*arraylist.List, map[string]*tableCollector) {
	names := arraylist.New()
	collectors := make(map[string]*tableCollector, table.Len())
	for i := 0; i < table.Len(); i++ {
		e := table.At(i)
		coll := collectors[e.Name]
		if coll == nil {
			coll = &tableCollector{name: e.Name, ident: identFor(e.Name)}
			collectors[e.Name] = coll
			names.Add(e.Name)
		}
		coll.Append(e.From, e.To)
	}
	return names, collectors
}

// identFor derives a Go identifier from a block name, e.g.
// "Latin-1 Supplement" => "_Latin_1_Supplement".
func identFor(name string) string {
	var b strings.Builder
	b.WriteByte('_')
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// --- Range table collector --------------------------------------------

// tableCollector collects the code-point ranges of one block and outputs
// them as a unicode.RangeTable literal.
type tableCollector struct {
	name   string // block name as given in Blocks.txt
	ident  string // Go identifier for the generated var
	ranges [][2]rune
}

// Append a range of code-points. A range adjacent to the previous one is
// merged into it.
func (tc *tableCollector) Append(from, to rune) {
	if n := len(tc.ranges); n > 0 && from == tc.ranges[n-1][1]+1 {
		tc.ranges[n-1][1] = to
		return
	}
	tc.ranges = append(tc.ranges, [2]rune{from, to})
}

// Output creates Go source code for the collected range table.
// Block ranges never straddle the BMP boundary, so a range goes into R32
// as a whole iff it starts beyond 0xFFFF.
func (tc *tableCollector) Output(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// %s\nvar %s = &unicode.RangeTable{\n", tc.name, tc.ident)
	in32 := tc.ranges[0][0] > 0xFFFF
	if in32 {
		fmt.Fprintf(buf, "\tR32: []unicode.Range32{\n")
	} else {
		fmt.Fprintf(buf, "\tR16: []unicode.Range16{\n")
	}
	for _, r := range tc.ranges {
		if !in32 && r[0] > 0xFFFF {
			fmt.Fprintf(buf, "\t},\n\tR32: []unicode.Range32{\n")
			in32 = true
		}
		fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r[0], r[1])
	}
	fmt.Fprintf(buf, "\t},\n}\n\n")
}

// --- Templates --------------------------------------------------------

var header = `package %s

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import "unicode"
`

var templateNameIndex = `
// BlockRangeTables maps every Unicode block name to its range table.
var BlockRangeTables = map[string]*unicode.RangeTable{ {{range .}}
    "{{.name}}": {{.ident}},{{end}}
}
`

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Parse(templString))
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	pkg := flag.String("pkg", "ucdblocks", "package name for the generated file")
	flag.Parse()
	verbose = *doVerbose
	path := os.Getenv("GOPATH") + "/etc/Blocks.txt"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	table, err := loadUnicodeBlocksFile(path)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d block ranges\n", table.Len())
	}
	names, collectors := collectTables(table)
	f, ioerr := os.Create("blockstables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, header, *pkg)
	var buf bytes.Buffer
	indexentries := make([]map[string]string, 0, names.Size())
	it := names.Iterator()
	for it.Next() {
		name := it.Value().(string)
		coll := collectors[name]
		coll.Output(&buf)
		indexentries = append(indexentries, map[string]string{
			"name": coll.name, "ident": coll.ident,
		})
	}
	w.WriteString("\n")
	w.Write(buf.Bytes())
	t := makeTemplate("block name index", templateNameIndex)
	checkFatal(t.Execute(w, indexentries))
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
