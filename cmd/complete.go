package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	request := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		flags["browser"] = predict.Nothing
		flags["H"] = predict.Something
		flags["headers-file"] = predict.Files("*")
		return flags
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"holdings": {
				Flags: request(map[string]complete.Predictor{"format": predict.Set{"json", "md"}}),
				Args:  predict.Something,
			},
			"summary": {
				Flags: request(map[string]complete.Predictor{}),
				Args:  predict.Something,
			},
			"lookup": {
				Flags: request(map[string]complete.Predictor{"d": predict.Something}),
				Args:  predict.Something,
			},
			"help":     {Args: predict.Set{"holdings", "summary", "lookup"}},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.toml"),
			"base-url": predict.Set{"https://www.ishares.com"},
			"v":        predict.Nothing,
		},
		Args: predict.Something,
	}
}
