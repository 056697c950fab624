/*
gllparse is an interactive CLI ("GREPL") for experimenting with GLL
grammars: enter an input string, and it reports acceptance and, on
request, renders the resulting SPPF as a tree.

It ships a small demo grammar for simple arithmetic expressions; there is
no grammar-definition language here (see package grammar's builder API for
that), so the demo is hardwired. GREPL's purpose is to exercise the
engine/interp runtime interactively during parser development, not to be
a general-purpose front end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/interp"
	"github.com/npillmayer/gll/ir"
	"github.com/npillmayer/gll/irgen"
	"github.com/npillmayer/gll/ranges"
	"github.com/npillmayer/gll/sppf"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// demo grammar:
//
//	Expr   -> Expr '+' Term | Term
//	Term   -> Term '*' Factor | Factor
//	Factor -> digit | '(' Expr ')'
//
// Left recursion is deliberate: it is the feature GLL exists to handle
// without the left-factoring an LL parser would require.
func demoGrammar() (*grammar.Grammar, grammar.TagMap) {
	digit := ranges.NewSet(ranges.Range{Lo: '0', Hi: '9'}, ranges.Range{Lo: '0', Hi: '9'})
	b := grammar.NewBuilder("Expr")
	b.LHS("Expr").Alt().N("Expr").T("+").N("Term").End().Alt().N("Term").End()
	b.LHS("Term").Alt().N("Term").T("*").N("Factor").End().Alt().N("Factor").End()
	b.LHS("Factor").Alt().Class(digit).End().Alt().T("(").N("Expr").T(")").End()
	return b.Grammar(), nil
}

func buildDemo() (*grammar.Grammar, *grammar.Analysis, *ir.ParserDefinition) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelError)
	defer tracer().SetTraceLevel(level)

	g, tags := demoGrammar()
	g.Normalize()
	if err := g.Validate(); err != nil {
		panic(fmt.Errorf("demo grammar is invalid: %w", err))
	}
	a := grammar.Analyze(g)
	pd, err := irgen.Build(g, a, tags)
	if err != nil {
		panic(fmt.Errorf("lowering demo grammar: %w", err))
	}
	return g, a, pd
}

// printTables pretty-prints FIRST/FOLLOW for every nonterminal of g as a
// pterm table, sorting each terminal set deterministically first.
func printTables(g *grammar.Grammar, a *grammar.Analysis) {
	data := pterm.TableData{{"Nonterminal", "FIRST", "FOLLOW"}}
	for _, nt := range g.Nonterminals() {
		data = append(data, []string{
			string(nt),
			joinTerminals(grammar.SortTerminals(a.First(nt))),
			joinTerminals(grammar.SortTerminals(a.Follow(nt))),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("rendering analysis table: %v", err)
	}
}

func joinTerminals(terms []grammar.Terminal) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	showTree := flag.Bool("tree", false, "Render the SPPF as a tree after each parse")
	showTables := flag.Bool("tables", false, "Print the FIRST/FOLLOW tables before starting")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)
	pterm.Info.Println("Welcome to GREPL")
	tracer().SetTraceLevel(traceLevel(*tlevel))

	g, a, pd := buildDemo()
	if *showTables {
		printTables(g, a)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))

	repl, err := readline.New("gll> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	r := &repl_{pd: pd, rl: repl, showTree: *showTree}
	if input != "" {
		r.runOne(input)
	}
	tracer().Infof("Quit with <ctrl>D")
	r.loop()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

type repl_ struct {
	pd       *ir.ParserDefinition
	rl       *readline.Instance
	showTree bool
}

func (r *repl_) loop() {
	for {
		line, err := r.rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		r.runOne(line)
	}
	pterm.Info.Println("Good bye!")
}

func (r *repl_) runOne(input string) {
	root, err := interp.Parse(r.pd, input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Printf("accepted %q\n", input)
	if r.showTree {
		pterm.DefaultTree.WithRoot(treeFrom(root)).Render()
	}
}

// treeFrom renders an SPPF node as a pterm tree, branching on every packed
// alternative so ambiguity is visible as extra children rather than
// collapsed away.
func treeFrom(n sppf.Node) pterm.TreeNode {
	switch v := n.(type) {
	case *sppf.IntermediateNode:
		node := pterm.TreeNode{Text: v.String()}
		for _, p := range v.PackedChildren() {
			node.Children = append(node.Children, treeFrom(p))
		}
		return node
	case *sppf.PackedNode:
		node := pterm.TreeNode{Text: v.String()}
		if v.Left != nil {
			node.Children = append(node.Children, treeFrom(v.Left))
		}
		node.Children = append(node.Children, treeFrom(v.Right))
		return node
	case *sppf.TerminalNode:
		return pterm.TreeNode{Text: v.String()}
	default:
		return pterm.TreeNode{Text: n.String()}
	}
}
