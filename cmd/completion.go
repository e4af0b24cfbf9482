package cmd

import (
	"flag"

	"github.com/etnz/pescados/date"
	"github.com/etnz/pescados/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands registered in c for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(c.VisitAll),
	}
	root.Flags["store"] = predict.Dirs("*")

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs.VisitAll)}
		if _, ok := sub.Flags["p"]; ok && cmd.Name() != "buy" && cmd.Name() != "sell" {
			sub.Flags["p"] = predict.Set(periodTokens())
		}
		switch cmd.Name() {
		case "chart":
			sub.Args = predict.Set{"bar", "line", "pie"}
		case "topic":
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "*"))
			}
		case "tx":
			sub.Flags["kind"] = predict.Set{"purchase", "sale"}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictors maps every flag visited by visit to a predictor: nothing for
// booleans, anything for the others.
func flagPredictors(visit func(func(*flag.Flag))) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	visit(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func periodTokens() []string {
	var tokens []string
	for _, p := range date.Periods() {
		tokens = append(tokens, p.String())
	}
	return tokens
}
