package cmd

import (
	"flag"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/etnz/inventory/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the inv command line for shell completion.
func Completion() *complete.Command {
	types := make(predict.Set, 0, len(inventory.ItemTypes))
	for _, t := range inventory.ItemTypes {
		types = append(types, string(t))
	}
	topics, _ := docs.GetAllTopics()

	// flags with a better prediction than "something".
	predictors := map[string]complete.Predictor{"type": types}

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			config.KeyFile:      predict.Files("*.json"),
			config.KeyCurrency:  predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			config.KeyLogLevel:  predict.Set{"trace", "debug", "info", "warn", "error"},
			config.KeyLogFormat: predict.Set{"console", "json"},
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Cmd.Name(), flag.ContinueOnError)
		c.Cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := predictors[f.Name]
			if !ok {
				p = predict.Something
			}
			sub.Flags[f.Name] = p
		})
		if c.Cmd.Name() == "topic" {
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Cmd.Name()] = sub
	}
	return root
}
