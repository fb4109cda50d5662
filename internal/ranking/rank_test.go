package ranking

import (
	"errors"
	"testing"

	"github.com/abhisek/urbanfarm/internal/crop"
)

func TestRank_TopThree(t *testing.T) {
	dist := crop.Distribution{
		crop.Banana: 0.50,
		crop.Mango:  0.25,
		crop.Rice:   0.12,
		crop.Maize:  0.07,
		crop.Coffee: 0.06,
	}
	recs, err := Rank(dist, DefaultTopK)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	want := []struct {
		label crop.Label
		pct   float64
	}{
		{crop.Banana, 50.0},
		{crop.Mango, 25.0},
		{crop.Rice, 12.0},
	}
	for i, w := range want {
		if recs[i].Crop != w.label {
			t.Errorf("rank %d crop = %q, want %q", i+1, recs[i].Crop, w.label)
		}
		if recs[i].ConfidencePct != w.pct {
			t.Errorf("rank %d confidence = %g, want %g", i+1, recs[i].ConfidencePct, w.pct)
		}
		if recs[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", recs[i].Rank, i+1)
		}
	}
}

func TestRank_ConfidencesNonIncreasing(t *testing.T) {
	dist := crop.Distribution{
		crop.Rice: 0.4, crop.Maize: 0.3, crop.Apple: 0.2, crop.Jute: 0.1,
	}
	recs, err := Rank(dist, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].ConfidencePct > recs[i-1].ConfidencePct {
			t.Errorf("confidence increased at rank %d: %g > %g",
				i+1, recs[i].ConfidencePct, recs[i-1].ConfidencePct)
		}
	}
}

func TestRank_TieBreakByCanonicalIndex(t *testing.T) {
	// Coffee (index 9) and Rice (index 0) tie: Rice must come first.
	dist := crop.Distribution{
		crop.Coffee: 0.25,
		crop.Rice:   0.25,
		crop.Banana: 0.50,
	}
	for i := 0; i < 20; i++ {
		recs, err := Rank(dist, 3)
		if err != nil {
			t.Fatal(err)
		}
		if recs[1].Crop != crop.Rice || recs[2].Crop != crop.Coffee {
			t.Fatalf("tie broken unstably: got [%s %s %s]",
				recs[0].Crop, recs[1].Crop, recs[2].Crop)
		}
	}
}

func TestRank_NeverPadsWithZeroConfidence(t *testing.T) {
	dist := crop.Distribution{
		crop.Banana: 0.9,
		crop.Mango:  0.1,
		crop.Rice:   0,
		crop.Apple:  0,
	}
	recs, err := Rank(dist, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2 (zero-probability crops must not pad)", len(recs))
	}
}

func TestRank_EmptyDistribution(t *testing.T) {
	_, err := Rank(crop.Distribution{}, 3)
	var derr *EmptyDistributionError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *EmptyDistributionError", err)
	}
}

func TestRank_ZeroMassDistribution(t *testing.T) {
	dist := crop.Distribution{crop.Rice: 0, crop.Maize: 0}
	_, err := Rank(dist, 3)
	var derr *EmptyDistributionError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *EmptyDistributionError", err)
	}
}

func TestRank_UnknownLabel(t *testing.T) {
	dist := crop.Distribution{crop.Label("Papaya"): 1}
	if _, err := Rank(dist, 3); err == nil {
		t.Fatal("Rank accepted a label outside the closed set")
	}
}

func TestRank_InvalidTopK(t *testing.T) {
	dist := crop.Distribution{crop.Rice: 1}
	if _, err := Rank(dist, 0); err == nil {
		t.Fatal("Rank accepted topK of 0")
	}
}

func TestRank_TipsOnRankOneOnly(t *testing.T) {
	dist := crop.Distribution{
		crop.Banana: 0.6, crop.Mango: 0.3, crop.Rice: 0.1,
	}
	recs, err := Rank(dist, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs[0].Tips) == 0 {
		t.Error("rank 1 carries no growing tips")
	}
	for _, r := range recs[1:] {
		if r.Tips != nil {
			t.Errorf("rank %d carries tips, want none", r.Rank)
		}
	}
}

func TestRank_PercentRounding(t *testing.T) {
	dist := crop.Distribution{
		crop.Banana: 0.50049,
		crop.Mango:  0.33333,
		crop.Rice:   0.16618,
	}
	recs, err := Rank(dist, 3)
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].ConfidencePct != 50.0 {
		t.Errorf("got %g, want 50.0", recs[0].ConfidencePct)
	}
	if recs[1].ConfidencePct != 33.3 {
		t.Errorf("got %g, want 33.3", recs[1].ConfidencePct)
	}
	if recs[2].ConfidencePct != 16.6 {
		t.Errorf("got %g, want 16.6", recs[2].ConfidencePct)
	}
}

func TestTipsFor_FallbackCopy(t *testing.T) {
	a := TipsFor(crop.Banana)
	if len(a) == 0 {
		t.Fatal("no tips for Banana")
	}
	a[0] = "mutated"
	b := TipsFor(crop.Banana)
	if b[0] == "mutated" {
		t.Error("TipsFor returned a shared slice")
	}
}
