package domain

import "github.com/wohlbier/taucmdr/internal/schema"

// Measurement returns the schema provider of the `measurement create`
// module.
func Measurement() schema.Provider {
	s := schema.New("measurement")
	s.MustAdd(schema.Option{
		Name: "profile", Kind: schema.KindBool, Default: true,
		Help: "gather application profiles",
	})
	s.MustAdd(schema.Option{
		Name: "trace", Kind: schema.KindBool, Default: false,
		Help: "gather application traces",
	})
	s.MustAdd(schema.Option{
		Name: "sample", Kind: schema.KindBool, Default: false,
		Help: "use event-based sampling to gather performance data",
	})
	s.MustAdd(schema.Option{
		Name: "source-inst", Kind: schema.KindString, Default: "automatic",
		Choices: []string{"automatic", "manual", "never"},
		Help:    "source code instrumentation mode",
	})
	s.MustAdd(schema.Option{
		Name: "compiler-inst", Kind: schema.KindString, Default: "fallback",
		Choices: []string{"always", "fallback", "never"},
		Help:    "compiler-based instrumentation mode",
	})
	s.MustAdd(schema.Option{
		Name: "io-wrap", Kind: schema.KindBool, Default: false,
		Help: "wrap POSIX I/O routines to measure I/O volume",
	})
	s.MustAdd(schema.Option{
		Name: "callpath", Kind: schema.KindInt, Default: 2,
		Help: "maximum depth of callpath recording",
	})
	s.MustAdd(schema.Option{
		Name: "memory-usage", Kind: schema.KindBool, Default: false,
		Help: "measure memory consumption",
	})
	s.MustAdd(schema.Option{
		Name: "metrics", Kind: schema.KindStringSlice, Default: []string{"TIME"},
		Help: "performance metrics to gather, e.g. TIME, PAPI_FP_INS",
	})
	return provider{title: "measurement", args: s}
}
