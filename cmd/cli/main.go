package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	searchplan "github.com/ritamzico/searchplan"
	"github.com/ritamzico/searchplan/internal/chain"
	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/demo"
	"github.com/ritamzico/searchplan/internal/graphquery"
	"github.com/ritamzico/searchplan/internal/indexquery"
	"github.com/ritamzico/searchplan/internal/plan"
	"github.com/ritamzico/searchplan/internal/vertexstore"
)

func main() {
	app := &cli.App{
		Name:  "searchplan",
		Usage: "hybrid search planner: plan a filter against an index + graph engine split",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root-type", Aliases: []string{"t"}, Value: "Table", Usage: "root entity or classification type"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "set the logger to debug level"},
		},
		Commands: []*cli.Command{
			{
				Name:      "plan",
				Usage:     "plan a single filter expression and print the emitted artifacts",
				ArgsUsage: "<filter expression>",
				Action:    runPlan,
			},
			{
				Name:   "repl",
				Usage:  "read filter expressions from stdin, one per line, and print each plan",
				Action: runRepl,
			},
			{
				Name:      "search",
				Usage:     "plan a filter and run it against the built-in demo vertex store",
				ArgsUsage: "<filter expression>",
				Action:    runSearch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newPlanner(c *cli.Context) *searchplan.Planner {
	logger := logrus.StandardLogger()
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	p := searchplan.NewPlannerWithDefaults(c.String("root-type"), demo.Schema(), demo.IndexCatalog())
	return p
}

func runPlan(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("expected a filter expression argument", 1)
	}
	return planAndPrint(newPlanner(c), c.Args().First())
}

func runRepl(c *cli.Context) error {
	p := newPlanner(c)
	fmt.Println("searchplan — hybrid index/graph planner")
	fmt.Println(`Enter a filter expression (e.g. name = "foo" AND owner = "bob"), or "exit".`)

	scanner := newLineScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}
		if err := planAndPrint(p, line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
	return scanner.Err()
}

func runSearch(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("expected a filter expression argument", 1)
	}

	root, err := searchplan.ParseFilter(c.Args().First())
	if err != nil {
		return err
	}

	ctx := plan.New(c.String("root-type"), demo.Schema(), demo.IndexCatalog(), config.DefaultLimits())
	classification := plan.Classify(ctx, root)

	store := demo.Vertices()
	matcher := vertexstore.NewMatcher()

	var stage chain.Stage
	if classification.PushdownEligible {
		indexQuery, err := indexquery.Emit(ctx, root)
		if err != nil {
			return err
		}
		// The demo store's Search returns every vertex, so the matcher
		// re-checks every predicate, not only the graph-filtered residual.
		graphquery.EmitInto(ctx, root, matcher, toAttrSet(ctx.AllAttributes()))
		stage = &chain.IndexThenGraphPlanner{Searcher: store, IndexQuery: indexQuery, Refiner: store, GraphProgram: matcher}
	} else {
		graphquery.EmitInto(ctx, root, matcher, toAttrSet(ctx.AllAttributes()))
		universe, err := store.Search(context.Background(), "")
		if err != nil {
			return err
		}
		stage = &chain.GraphOnlyPlanner{Refiner: store, GraphProgram: matcher, Universe: universe}
	}

	results, err := chain.New(stage).Execute(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("pushdown eligible: %v\n", classification.PushdownEligible)
	fmt.Printf("matched %d vertex(es):\n", len(results))
	for _, id := range results {
		fmt.Printf("  %s\n", id)
	}
	for _, d := range ctx.Diagnostics() {
		fmt.Printf("diagnostic [%s] %s: %s\n", d.Kind, d.AttributeName, d.Message)
	}
	return nil
}

func toAttrSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func planAndPrint(p *searchplan.Planner, expr string) error {
	root, err := searchplan.ParseFilter(expr)
	if err != nil {
		return err
	}
	result, err := p.Plan(root)
	if err != nil {
		return err
	}

	fmt.Printf("pushdown eligible: %v\n", result.PushdownEligible)
	if result.IndexQuery != "" {
		fmt.Printf("index query: %s\n", result.IndexQuery)
	}
	fmt.Printf("graph program: %s\n", result.GraphProgram.String())
	fmt.Printf("gremlin: %s\n", result.Gremlin.Steps)
	for _, d := range result.Diagnostics {
		fmt.Printf("diagnostic [%s] %s: %s\n", d.Kind, d.AttributeName, d.Message)
	}
	return nil
}
