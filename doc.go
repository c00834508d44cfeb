// Package familylifespan tracks family members and reports how long they
// lived, individually and on average by family side and relationship type.
//
// Usage:
//
//	import "github.com/ttrampp/Family-Lifespan-Analyzer/engine"
//
//	avg := engine.AverageFor(people,
//	    engine.Filters{Side: engine.SideMother, Relation: engine.RelationBlood},
//	    engine.WithCurrentYear(2024),
//	)
//	fmt.Println(engine.FormatAvg("Mother side, blood relatives", avg))
//
// The engine is pure: it takes a slice of people and returns figures or
// display strings. The registry package holds the session's mutable list,
// the shell package drives the interactive menu, and cmd/family is the CLI.
package familylifespan
