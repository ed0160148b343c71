package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// errRejected is returned by commands if a sentence is not valid.
var errRejected = errors.New("sentence rejected")

var rootFlags = struct {
	trace    *string
	all      *bool
	maxTrees *int
}{}

var rootCmd = &cobra.Command{
	Use:   "herogram",
	Short: "Check sentences about superheroes against a context-free grammar",
	Long: `herogram analyzes sentences according to a grammar for superhero stories.
For valid sentences it displays the parse tree(s), for invalid ones it
displays the tokens it has processed.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	rootFlags.all = rootCmd.PersistentFlags().BoolP("all", "a", false, "print all parse trees of ambiguous sentences")
	rootFlags.maxTrees = rootCmd.PersistentFlags().Int("max-trees", 0, "maximum number of parse trees per sentence (0 = unlimited)")
}

// Execute runs the command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errRejected) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return err
}

// tracerKeys are the tracers of this module.
var tracerKeys = []string{
	"herogram.cmd",
	"herogram.grammar",
	"herogram.lexicon",
	"herogram.chart",
	"herogram.render",
}

// gconfTracers are the configuration keys for the trace levels of the global
// tracers gconf creates on initialization. They default to Info.
var gconfTracers = []string{
	"tracinginterpreter",
	"tracingcommands",
	"tracingequations",
	"tracingsyntax",
	"tracinggraphics",
	"tracingscripting",
	"tracingcore",
	"tracingengine",
}

// setup configures tracing and the global configuration from the command line
// flags.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"tracelevel.root":   *rootFlags.trace,
		"herogram.maxtrees": *rootFlags.maxTrees,
	}
	for _, key := range tracerKeys {
		conf["tracelevel."+key] = *rootFlags.trace
	}
	for _, key := range gconfTracers {
		conf[key] = *rootFlags.trace
	}
	return configure(conf)
}

func configure(conf testconfig.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)
	tracer().Infof("trace level is %s", conf.GetString("tracelevel.root"))
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  " VALID ",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "INVALID",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// runMenu lets the user choose between the demo and entering sentences.
func runMenu(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("herogram> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	a := newAnalyzer(cmd.OutOrStdout(), *rootFlags.all)
	pterm.DefaultHeader.WithWriter(a.out).Println("Superhero Grammar Analyzer")
	fmt.Fprintln(a.out, "This program analyzes sentences according to the superhero grammar.")
	menu(a, repl)
	return nil
}
