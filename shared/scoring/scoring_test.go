package scoring

import "testing"

func fruits(spec ...any) []Fruit {
	var out []Fruit
	for i := 0; i < len(spec); i += 3 {
		name, points, n := spec[i].(string), spec[i+1].(int), spec[i+2].(int)
		for j := 0; j < n; j++ {
			out = append(out, Fruit{Name: name, Points: points})
		}
	}
	return out
}

func TestRateBowl(t *testing.T) {
	rules := Rules{MassBonus: 10, MassPoints: 10}
	tests := []struct {
		name          string
		bowl          []Fruit
		wantFruit     int
		wantMass      int
		wantDiversity int
	}{
		{"empty", nil, 0, 0, 0},
		{"single kind", fruits("banana", 5, 3), 15, 0, 0},
		{"half and half", fruits("banana", 5, 2, "apple half", 2, 2), 14, 0, 50},
		{"thirds round up", fruits("a", 1, 1, "b", 1, 1, "c", 1, 1), 3, 0, 67},
		{"mass bonus at eleven", fruits("banana", 1, 11), 11, 10, 0},
		{"mass bonus twice", fruits("banana", 1, 21), 21, 20, 0},
		{"no bonus at ten", fruits("banana", 1, 10), 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Rate([][]Fruit{tt.bowl}, rules)
			b := res.Bowls[0]
			if b.FruitScore != tt.wantFruit || b.MassScore != tt.wantMass || b.DiversityScore != tt.wantDiversity {
				t.Errorf("got fruit=%d mass=%d diversity=%d, want %d %d %d",
					b.FruitScore, b.MassScore, b.DiversityScore, tt.wantFruit, tt.wantMass, tt.wantDiversity)
			}
			if b.Sum != b.FruitScore+b.MassScore+b.DiversityScore || res.Score != b.Sum {
				t.Errorf("sum=%d score=%d", b.Sum, res.Score)
			}
		})
	}
}

func TestRateSumsBowlsAndSortsKinds(t *testing.T) {
	bowls := [][]Fruit{
		fruits("apple half", 2, 1, "banana", 5, 3),
		fruits("melon slice", 3, 2),
	}
	res := Rate(bowls, Rules{})

	if len(res.Bowls) != 2 {
		t.Fatalf("bowls = %d", len(res.Bowls))
	}
	kinds := res.Bowls[0].Kinds
	if len(kinds) != 2 || kinds[0].Name != "banana" || kinds[0].Count != 3 {
		t.Errorf("kinds = %+v", kinds)
	}
	if want := res.Bowls[0].Sum + res.Bowls[1].Sum; res.Score != want {
		t.Errorf("score = %d, want %d", res.Score, want)
	}
}
