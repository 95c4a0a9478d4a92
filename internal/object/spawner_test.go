package object

import "testing"

func TestSpawnerWaitsForTarget(t *testing.T) {
	s := NewSpawner(newRand(1))
	target := s.Target()
	if target < DefaultSpawnerConfig.MinInterval {
		t.Fatalf("Target %d below minimum interval", target)
	}
	for i := 1; i < target; i++ {
		if _, ok := s.MaybeSpawn(0, 960, 1, 1); ok {
			t.Fatalf("Spawned early at frame %d (target %d)", i, target)
		}
	}
	if _, ok := s.MaybeSpawn(0, 960, 1, 1); !ok {
		t.Fatalf("Expected spawn at frame %d", target)
	}
}

func TestSpawnerIntervalBounds(t *testing.T) {
	cfg := DefaultSpawnerConfig
	s := NewSpawner(newRand(2))
	for score := 0; score <= 20000; score += 250 {
		for i := 0; i < 20; i++ {
			s.sinceSpawn = s.target
			if _, ok := s.MaybeSpawn(score, 960, 0, 1); !ok {
				t.Fatal("Expected spawn when counter is at target")
			}
			base := max(cfg.MinInterval, cfg.BaseInterval-cfg.PerTier*DifficultyTier(score))
			if s.Target() < base || s.Target() >= base+cfg.Jitter {
				t.Errorf("score %d: target %d outside [%d,%d)", score, s.Target(), base, base+cfg.Jitter)
			}
		}
	}
}

func TestSpawnerNoDoubleSpawnAfterReset(t *testing.T) {
	s := NewSpawner(newRand(3))
	for run := 0; run < 5; run++ {
		s.Reset()
		last := -DefaultSpawnerConfig.MinInterval
		for frame := 0; frame < 2000; frame++ {
			if _, ok := s.MaybeSpawn(0, 960, 1, 1); ok {
				if frame-last < DefaultSpawnerConfig.MinInterval {
					t.Fatalf("run %d: spawns %d frames apart", run, frame-last)
				}
				last = frame
			}
		}
	}
}

func TestSpawnerHorizontalMargins(t *testing.T) {
	s := NewSpawner(newRand(4))
	const width = 300.0
	for i := 0; i < 500; i++ {
		s.sinceSpawn = s.target
		o, ok := s.MaybeSpawn(0, width, 0, 1)
		if !ok {
			t.Fatal("Expected spawn")
		}
		if o.X < 0 || o.X+o.Size > width {
			t.Fatalf("Object %+v not fully on screen", o)
		}
		if o.Y != -o.Size {
			t.Fatalf("Expected object to start one size above the top, got Y=%v", o.Y)
		}
	}
}

func TestSpawnerNarrowPlayfieldCentres(t *testing.T) {
	s := NewSpawner(newRand(5))
	s.sinceSpawn = s.target
	o, ok := s.MaybeSpawn(0, 10, 0, 1)
	if !ok {
		t.Fatal("Expected spawn")
	}
	cx, _ := o.Center()
	if cx != 5 {
		t.Errorf("Expected centred object, got centre %v", cx)
	}
}

func TestSpawnerSpeedMultiplier(t *testing.T) {
	s := NewSpawner(newRand(6))
	s.sinceSpawn = s.target
	o, _ := s.MaybeSpawn(0, 960, 0, 1.21)
	if want := Def(o.Kind).Speed * 1.21; o.Speed != want {
		t.Errorf("Expected speed %v, got %v", want, o.Speed)
	}
}

func TestDebtBiasShiftsWeights(t *testing.T) {
	s := NewSpawner(newRand(7))
	low := s.Weights(0)
	high := s.Weights(8000)
	capped := s.Weights(1000000)

	for _, kind := range Kinds() {
		def := Def(kind)
		if low[kind] != def.Weight {
			t.Errorf("%s: expected unbiased weight %v at score 0, got %v", kind, def.Weight, low[kind])
		}
		if def.Category == Liability && high[kind] <= low[kind] {
			t.Errorf("%s: liability weight should grow with score", kind)
		}
		if def.Category == Asset && high[kind] >= low[kind] {
			t.Errorf("%s: asset weight should shrink with score", kind)
		}
		if capped[kind] < DefaultSpawnerConfig.FloorWeight {
			t.Errorf("%s: weight %v below floor", kind, capped[kind])
		}
	}

	crash := Def(KindMarketCrash).Weight
	if want := crash * (1 + DefaultSpawnerConfig.MaxBias); capped[KindMarketCrash] != want {
		t.Errorf("Expected capped liability weight %v, got %v", want, capped[KindMarketCrash])
	}
}

func TestSpawnerEventuallyPicksEveryKind(t *testing.T) {
	s := NewSpawner(newRand(8))
	var seen [NumKinds]int
	for i := 0; i < 20000; i++ {
		s.sinceSpawn = s.target
		o, _ := s.MaybeSpawn(0, 960, 0, 1)
		seen[o.Kind]++
	}
	for _, kind := range Kinds() {
		if seen[kind] == 0 {
			t.Errorf("%s never spawned", kind)
		}
	}
	if seen[KindStocks] <= seen[KindMarketCrash] {
		t.Errorf("Expected heavy kinds to dominate: stocks=%d crash=%d", seen[KindStocks], seen[KindMarketCrash])
	}
}

func TestSpawnerDeterministicWithSeed(t *testing.T) {
	a := NewSpawner(newRand(42))
	b := NewSpawner(newRand(42))
	for i := 0; i < 600; i++ {
		oa, okA := a.MaybeSpawn(i, 960, 1, 1)
		ob, okB := b.MaybeSpawn(i, 960, 1, 1)
		if okA != okB || oa != ob {
			t.Fatalf("Seeded spawners diverged at frame %d", i)
		}
	}
}
