// Command mcs is the mortgage calculator suite.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/cmd"
	"github.com/etnz/mortgage/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell completion.
	completion(commander).Complete("mcs")

	flag.Parse()
	if flag.NArg() > 0 && !registered(commander, flag.Arg(0)) {
		if ok, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the commands and their flags to the shell.
func completion(commander *subcommands.Commander) *complete.Command {
	top := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		top.Sub[c.Name()] = &complete.Command{Flags: flags(f)}
	})

	if topics, err := docs.GetAllTopics(); err == nil {
		top.Sub["topic"].Args = predict.Set(topics)
	}
	top.Sub["schedule"].Args = complete.PredictFunc(scenarioNames)
	top.Sub["run"].Args = complete.PredictFunc(scenarioNames)
	return top
}

func flags(f *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "book":
			m[fl.Name] = predict.Files("*.jsonl")
		case "config":
			m[fl.Name] = predict.Files("*.toml")
		case "period":
			m[fl.Name] = predict.Set{"monthly", "quarterly", "yearly"}
		case "rate", "new-rate":
			m[fl.Name] = predict.Set{"market"}
		default:
			m[fl.Name] = predict.Something
		}
	})
	return m
}

// scenarioNames predicts the names of the scenarios of the book.
func scenarioNames(prefix string) []string {
	file := os.Getenv(cmd.EnvBookFile)
	if file == "" {
		file = "scenarios.jsonl"
	}
	book, err := mortgage.LoadBook(file)
	if err != nil {
		return nil
	}
	var names []string
	for _, s := range book.Scenarios() {
		names = append(names, s.Label())
	}
	return names
}
