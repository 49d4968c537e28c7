package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"rondo/grammar"
	"rondo/internal/ast"
	"rondo/internal/cfg"
	"rondo/internal/config"
	"rondo/internal/semantic"
	"rondo/internal/unfold"
)

var log = commonlog.GetLogger("rondo")

func main() {
	unfoldK := flag.Int("unfold", 1, "number of unfolds to perform (positive)")
	dumpCFG := flag.Bool("cfg", false, "dump the control-flow graph instead of transforming")
	funcName := flag.String("func", "main", "function whose CFG to build with -cfg")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: rondo-cli [flags] <file.c> <config.yml>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *unfoldK < 1 {
		fmt.Fprintf(os.Stderr, "%d is an invalid positive unfold count\n", *unfoldK)
		os.Exit(1)
	}

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	startTime := time.Now()
	path := flag.Arg(0)
	configPath := flag.Arg(1)

	cfgFile, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log.Infof("config loaded: round=%s mbox=%s", cfgFile.Round, cfgFile.Mbox)

	file, err := grammar.ParseFile(path)
	if err != nil {
		color.Red("Parsing failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}
	log.Infof("parsed %s", path)

	vars := unfold.SyncVars{Round: cfgFile.Round, Mbox: cfgFile.Mbox}

	analyzer := semantic.NewAnalyzer()
	for _, e := range analyzer.Analyze(file, vars) {
		color.Yellow("warning: %s (%s)", e.Message, e.Position)
	}

	if *dumpCFG {
		fn := ast.FindFuncDef(file, *funcName)
		if fn == nil {
			fmt.Fprintf(os.Stderr, "function %q not found\n", *funcName)
			os.Exit(1)
		}
		graph, _ := cfg.FromAST(fn)
		fmt.Print(graph.Dump())
		color.Green("Built CFG of %s in %s", *funcName, formatDuration(time.Since(startTime)))
		return
	}

	if err := unfold.Unfold(file, *unfoldK, vars); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	log.Infof("unfolded %d times", *unfoldK)

	fmt.Print(file.String())
	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(startTime)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
