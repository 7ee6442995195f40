// Package scoring rates filled fruit bowls at the end of a round.
package scoring

import (
	"math"
	"sort"
)

// Fruit is one collected fruit as it lands in a bowl.
type Fruit struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// NameCount is how many fruits of one kind a bowl holds.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BowlResult is the rating of a single bowl.
type BowlResult struct {
	Fruits         int         `json:"fruits"`
	FruitScore     int         `json:"fruit_score"`
	MassScore      int         `json:"mass_score"`
	DiversityScore int         `json:"diversity_score"`
	Sum            int         `json:"sum"`
	Kinds          []NameCount `json:"kinds"`
}

// Result is the rating of a whole round.
type Result struct {
	Bowls []BowlResult `json:"bowls"`
	Score int          `json:"score"`
}

// Rules are the bonus constants of a rating.
type Rules struct {
	MassBonus  int // every MassBonus-th fruit past the first earns MassPoints
	MassPoints int
}

// Rate scores each bowl by the points of its fruits, a mass bonus for large
// bowls and a diversity bonus that falls as one kind dominates the bowl.
func Rate(bowls [][]Fruit, rules Rules) Result {
	res := Result{Bowls: make([]BowlResult, len(bowls))}
	for i, bowl := range bowls {
		b := rateBowl(bowl, rules)
		res.Bowls[i] = b
		res.Score += b.Sum
	}
	return res
}

func rateBowl(bowl []Fruit, rules Rules) BowlResult {
	b := BowlResult{Fruits: len(bowl)}
	counts := make(map[string]int)
	for i, f := range bowl {
		if rules.MassBonus > 0 && i > 0 && i%rules.MassBonus == 0 {
			b.MassScore += rules.MassPoints
		}
		b.FruitScore += f.Points
		counts[f.Name]++
	}

	for name, n := range counts {
		b.Kinds = append(b.Kinds, NameCount{Name: name, Count: n})
	}
	sort.Slice(b.Kinds, func(i, j int) bool {
		if b.Kinds[i].Count != b.Kinds[j].Count {
			return b.Kinds[i].Count > b.Kinds[j].Count
		}
		return b.Kinds[i].Name < b.Kinds[j].Name
	})

	if len(bowl) > 0 {
		dominant := float64(b.Kinds[0].Count) / float64(len(bowl))
		b.DiversityScore = int(math.Ceil(100 - dominant*100))
	}

	b.Sum = b.FruitScore + b.MassScore + b.DiversityScore
	return b
}
