// Package main is the entry point for pedigreectl, a thin CLI
// demonstrator over the pedigree relationship engine. It seeds a demo
// pedigree, drives internal/pedigree and internal/cousin, and prints the
// results. None of this package's logic belongs to the engine itself.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gookit/color"

	"github.com/cacack/pedigree-engine/internal/config"
	"github.com/cacack/pedigree-engine/internal/cousin"
	"github.com/cacack/pedigree-engine/internal/logging"
	"github.com/cacack/pedigree-engine/internal/pedigree"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	log, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch os.Args[1] {
	case "consanguinity":
		runConsanguinity(log)
	case "relationship":
		runRelationship(os.Args[2:], log)
	case "sosa":
		runSosa(os.Args[2:], log)
	case "cousins":
		runCousins(os.Args[2:], cfg, log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pedigreectl - pedigree relationship engine demonstrator

Usage:
  pedigreectl <command> [args]

Commands:
  consanguinity            Print F for every person in the demo pedigree
  relationship <a> <b>     Print the relationship coefficient and top ancestors for a, b
  sosa <root>              Print the Sosa/Ahnentafel table anchored at root
  cousins <a> <b>          Print the cousin classification and matrix for a, b
  help                     Show this help message

Environment Variables:
  LOG_LEVEL               Log level: debug, info, warn, error (default: info)
  LOG_FORMAT              Log format: text, json (default: text)
  CACHE_DIRECTORY         Cousin on-disk cache directory (default: ./pedigree-cache)
  CACHE_ENABLED           Enable the cousin on-disk cache (default: false)`)
}

func parsePersonID(s string) pedigree.PersonId {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid person id %q: %v\n", s, err)
		os.Exit(1)
	}
	return pedigree.PersonId(n)
}

func runConsanguinity(log *logging.Logger) {
	pd, reg := seedPedigree()
	consang, err := pedigree.ComputeConsanguinity(pd, true)
	if err != nil {
		log.Errorw("consanguinity computation failed", "error", err)
		os.Exit(1)
	}

	color.Bold.Println("Consanguinity (F)")
	t := newTable("Person", "F")
	for _, id := range pd.PersonIDs() {
		t.addRow(reg.Label(id), fmt.Sprintf("%.6f", consang[id]))
	}
	t.print()
}

func runRelationship(args []string, log *logging.Logger) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pedigreectl relationship <a> <b>")
		os.Exit(1)
	}
	a, b := parsePersonID(args[0]), parsePersonID(args[1])

	pd, reg := seedPedigree()
	consang, err := pedigree.ComputeConsanguinity(pd, true)
	if err != nil {
		log.Errorw("consanguinity computation failed", "error", err)
		os.Exit(1)
	}
	ri, err := pedigree.NewRelationshipInfo(pd, consang)
	if err != nil {
		log.Errorw("failed to build relationship info", "error", err)
		os.Exit(1)
	}

	summary, err := cousin.SummarizeRelationship(ri, a, b, reg.Label)
	if err != nil {
		log.Errorw("relationship query failed", "error", err)
		os.Exit(1)
	}

	color.Bold.Printf("Relationship between %s and %s\n", summary.LabelA, summary.LabelB)
	fmt.Printf("  coefficient: %.6f\n", summary.Coefficient)
	fmt.Printf("  common ancestors: %d\n", len(summary.CommonAncestors))
	for _, anc := range summary.CommonAncestors {
		fmt.Printf("    %s (gen_a=%d, gen_b=%d)\n", anc.Label, anc.GenA, anc.GenB)
	}

	if degree, ok := cousin.InferCousinDegree(summary); ok {
		fmt.Printf("  relationship: %s\n", degree.String())
	} else {
		fmt.Println("  relationship: not related")
	}
}

func runSosa(args []string, log *logging.Logger) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: pedigreectl sosa <root>")
		os.Exit(1)
	}
	root := parsePersonID(args[0])

	pd, reg := seedPedigree()
	cache, err := pedigree.BuildSosaCache(pd, root)
	if err != nil {
		log.Errorw("sosa cache build failed", "error", err)
		os.Exit(1)
	}

	color.Bold.Printf("Ahnentafel for %s\n", reg.Label(root))
	t := newTable("Sosa #", "Generation", "Person")
	for _, entry := range cache.Report() {
		t.addRow(fmt.Sprintf("%d", entry.Number), fmt.Sprintf("%d", entry.Generation), reg.Label(entry.PersonID))
	}
	t.print()
	fmt.Printf("\ntotal ancestors: %d, max generation: %d\n", cache.TotalAncestors(), cache.MaxGeneration())
}

func runCousins(args []string, cfg *config.Config, log *logging.Logger) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pedigreectl cousins <a> <b>")
		os.Exit(1)
	}
	a, b := parsePersonID(args[0]), parsePersonID(args[1])

	pd, reg := seedPedigree()
	consang, err := pedigree.ComputeConsanguinity(pd, true)
	if err != nil {
		log.Errorw("consanguinity computation failed", "error", err)
		os.Exit(1)
	}
	ri, err := pedigree.NewRelationshipInfo(pd, consang)
	if err != nil {
		log.Errorw("failed to build relationship info", "error", err)
		os.Exit(1)
	}

	summary, err := cousin.SummarizeRelationship(ri, a, b, reg.Label)
	if err != nil {
		log.Errorw("relationship query failed", "error", err)
		os.Exit(1)
	}

	settings := cousin.DefaultSettings()
	settings.CacheEnabled = cfg.CacheEnabled
	settings.CacheDirectory = cfg.CacheDirectory
	if cfg.DefaultMaxAncestorLevel > 0 {
		settings.MaxDepthA = &cfg.DefaultMaxAncestorLevel
	}
	if cfg.DefaultMaxDescendantLevel > 0 {
		settings.MaxDepthB = &cfg.DefaultMaxDescendantLevel
	}

	engine, err := cousin.NewEngine(settings, log.Desugar())
	if err != nil {
		log.Errorw("failed to build cousin engine", "error", err)
		os.Exit(1)
	}

	spouses := func(id pedigree.PersonId) []pedigree.PersonId {
		f, ok := familyOf(pd, id)
		if !ok {
			return nil
		}
		if f.FatherID == id {
			return []pedigree.PersonId{f.MotherID}
		}
		return []pedigree.PersonId{f.FatherID}
	}

	listings := cousin.BuildCousinListings(summary, settings, spouses, nil)

	color.Bold.Printf("Cousin listings for %s and %s\n", summary.LabelA, summary.LabelB)
	t := newTable("Ancestor", "Chain A", "Chain B", "Relationship")
	for _, l := range listings {
		t.addRow(reg.Label(l.Ancestor), reg.LabelAll(l.DescendantChainA)[len(l.DescendantChainA)-1], reg.LabelAll(l.DescendantChainB)[len(l.DescendantChainB)-1], l.Degree.String())
	}
	t.print()

	matrix := engine.BuildCousinMatrix(summary)
	fmt.Printf("\n%d depth-a bucket(s) cached\n", matrix.Len())
}

// familyOf returns the union any of whose parents is id, if one exists in
// pd. The demo CLI only has two parents per union, so "spouse" just means
// "the other parent."
func familyOf(pd *pedigree.Pedigree, id pedigree.PersonId) (*pedigree.UnionNode, bool) {
	for _, unionID := range unionIDsOf(pd) {
		u, ok := pd.Union(unionID)
		if !ok {
			continue
		}
		if u.FatherID == id || u.MotherID == id {
			return u, true
		}
	}
	return nil, false
}

func unionIDsOf(pd *pedigree.Pedigree) []pedigree.UnionId {
	ids := make([]pedigree.UnionId, 0, pd.UnionCount())
	for i := 1; i <= pd.UnionCount(); i++ {
		ids = append(ids, pedigree.UnionId(i))
	}
	return ids
}
