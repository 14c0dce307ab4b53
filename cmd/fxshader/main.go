// Command fxshader prints the generated GLSL for one sprite shader variant.
//
// It is the quickest way to see exactly what the cache hands the driver:
//
//	fxshader -mode silhouette -effects whirl,color -stage fragment
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gogpu/spritefx"
)

func main() {
	var (
		mode    = flag.String("mode", "default", "draw mode (default, straightAlpha, silhouette, colorMask, line)")
		effects = flag.String("effects", "", "comma-separated effect names, e.g. whirl,ghost")
		stage   = flag.String("stage", "both", "what to print: vertex, fragment, both or defines")
		list    = flag.Bool("list", false, "list draw modes and effects, then exit")
	)
	flag.Parse()

	reg := spritefx.DefaultRegistry()

	if *list {
		printTables(reg)
		return
	}

	m, ok := spritefx.DrawModeByName(*mode)
	if !ok {
		log.Fatalf("unknown draw mode %q (try -list)", *mode)
	}

	var names []string
	if *effects != "" {
		names = strings.Split(*effects, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
	}
	bits, err := reg.MaskOf(names...)
	if err != nil {
		log.Fatalf("bad effect list: %v", err)
	}

	// Show the variant the cache would actually build.
	if normalized := reg.Normalize(m, bits); normalized != bits {
		log.Printf("mode %s ignores part of the request: building %#x instead of %#x",
			m, uint32(normalized), uint32(bits))
		bits = normalized
	}

	switch *stage {
	case "defines":
		header, err := spritefx.DefineHeader(reg, m, bits)
		if err != nil {
			log.Fatalf("build defines: %v", err)
		}
		fmt.Print(header)
	case "vertex", "fragment", "both":
		vs, fs, err := spritefx.BuildSource(reg, m, bits)
		if err != nil {
			log.Fatalf("build source: %v", err)
		}
		if *stage != "fragment" {
			fmt.Print(vs)
		}
		if *stage == "both" {
			fmt.Println()
		}
		if *stage != "vertex" {
			fmt.Print(fs)
		}
	default:
		log.Fatalf("unknown stage %q (vertex, fragment, both or defines)", *stage)
	}
}

func printTables(reg *spritefx.Registry) {
	fmt.Println("draw modes:")
	for _, m := range spritefx.DrawModes() {
		ignored := reg.IgnoredEffects(m)
		if ignored == 0 {
			fmt.Printf("  %s\n", m)
			continue
		}
		var names []string
		for i, info := range reg.Effects() {
			if ignored.Has(spritefx.Effect(i)) {
				names = append(names, info.Name)
			}
		}
		fmt.Printf("  %s (ignores %s)\n", m, strings.Join(names, ", "))
	}

	fmt.Println("effects:")
	for i, info := range reg.Effects() {
		uniform, _ := reg.UniformName(spritefx.Effect(i))
		extra := ""
		if info.ShapeChanges {
			extra = ", changes shape"
		}
		fmt.Printf("  %-10s bit %d, uniform %s%s\n", info.Name, i, uniform, extra)
	}
}
