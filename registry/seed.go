package registry

import "github.com/ttrampp/Family-Lifespan-Analyzer/engine"

// Seed returns the members every session starts with. A fresh slice is
// built on each call.
func Seed() []engine.Person {
	return []engine.Person{
		{Name: "Bart", Side: engine.SideFather, BirthYear: 1927, DeathYear: engine.Year(2013), Relation: engine.RelationOther},
		{Name: "Elaine", Side: engine.SideFather, BirthYear: 1930, DeathYear: engine.Year(2019), Relation: engine.RelationBlood},
		{Name: "Gordon", Side: engine.SideFather, BirthYear: 1952, Relation: engine.RelationBlood},
		{Name: "Ruth", Side: engine.SideFather, BirthYear: 1955, DeathYear: engine.Year(2020), Relation: engine.RelationOther},
		{Name: "Lloyd", Side: engine.SideMother, BirthYear: 1921, DeathYear: engine.Year(1999), Relation: engine.RelationBlood},
		{Name: "Margaret", Side: engine.SideMother, BirthYear: 1924, DeathYear: engine.Year(2011), Relation: engine.RelationOther},
		{Name: "Donna", Side: engine.SideMother, BirthYear: 1950, DeathYear: engine.Year(2008), Relation: engine.RelationBlood},
		{Name: "Pat", Side: engine.SideMother, BirthYear: 1979, Relation: engine.RelationBlood},
	}
}
