package loop

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/tomz197/valdebt/internal/object"
)

const (
	testW = FieldWidth
	testH = FieldHeight
)

// fakeScores records saves and can be made to fail.
type fakeScores struct {
	stored int
	saves  []int
	err    error
}

func (f *fakeScores) Load() int { return f.stored }

func (f *fakeScores) Save(score int) error {
	f.saves = append(f.saves, score)
	if f.err != nil {
		return f.err
	}
	f.stored = score
	return nil
}

// quietSim never spawns, so tests control every object on the field.
func quietSim(scores HighScores) *Sim {
	sim := NewSim(1, scores, nil)
	sim.Spawner = nil
	return sim
}

func playing() State {
	s := NewState(nil)
	s.Status = StatusPlaying
	return s
}

// onPlayer places kind so it overlaps the player after one frame of fall.
func onPlayer(s State, kind object.Kind) object.FallingObject {
	def := object.Def(kind)
	px := s.PlayerX * testW
	py := PlayerAnchorY * testH
	return object.NewFallingObject(def, px-def.Size/2, py-def.Size/2-def.Speed, 1)
}

func hasCue(s State, c Cue) bool {
	return slices.Contains(s.Cues, c)
}

func TestUpdateIgnoresNonPlayingStates(t *testing.T) {
	sim := quietSim(nil)
	for _, status := range []Status{StatusMenu, StatusGameOver} {
		s := NewState(nil)
		s.Status = status
		s.Score = 42
		s.Objects = []object.FallingObject{onPlayer(s, object.KindStocks)}

		got := sim.Update(s, testW, testH)
		if !reflect.DeepEqual(got, s) {
			t.Errorf("%v: Update changed state", status)
		}
	}
}

func TestAssetScoresAndCounts(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Objects = []object.FallingObject{onPlayer(s, object.KindStocks)}

	got := sim.Update(s, testW, testH)

	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Combo != 1 {
		t.Errorf("Combo = %d, want 1", got.Combo)
	}
	if len(got.Objects) != 0 {
		t.Errorf("caught object should be removed, have %d", len(got.Objects))
	}
	if got.Tally[object.KindStocks] != (KindTally{Hits: 1, Points: 100}) {
		t.Errorf("Tally = %+v", got.Tally[object.KindStocks])
	}
	if got.FlashAlpha <= 0 {
		t.Error("asset catch should flash")
	}
	if len(got.Particles) == 0 || len(got.Texts) == 0 {
		t.Error("asset catch should emit particles and a floating text")
	}
	if !hasCue(got, CueAsset) {
		t.Errorf("Cues = %v, want asset", got.Cues)
	}
}

func TestComboStartsBullMarket(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	for range ComboThreshold {
		s.Objects = []object.FallingObject{onPlayer(s, object.KindStocks)}
		s = sim.Update(s, testW, testH)
	}

	if !s.BullMarket {
		t.Fatal("third consecutive asset should start a bull market")
	}
	if s.ComboTimer != BullMarketFrames {
		t.Errorf("ComboTimer = %d, want %d", s.ComboTimer, BullMarketFrames)
	}
	if s.Score != 300 {
		t.Errorf("activating asset should not be doubled: Score = %d", s.Score)
	}
	if !hasCue(s, CueBullMarket) {
		t.Errorf("Cues = %v, want bull-market", s.Cues)
	}
}

func TestBullMarketDoublesAssets(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.BullMarket = true
	s.ComboTimer = 100
	s.Combo = 3
	s.Objects = []object.FallingObject{onPlayer(s, object.KindFamilyHome)}

	got := sim.Update(s, testW, testH)
	if got.Score != 400 {
		t.Errorf("Score = %d, want 400", got.Score)
	}
	if got.Tally[object.KindFamilyHome].Points != 400 {
		t.Errorf("tally should record doubled points, got %d", got.Tally[object.KindFamilyHome].Points)
	}
}

func TestBullMarketFollowsTimer(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.BullMarket = true
	s.ComboTimer = 2

	s = sim.Update(s, testW, testH)
	if !s.BullMarket || s.ComboTimer != 1 {
		t.Errorf("after one frame: bull=%v timer=%d", s.BullMarket, s.ComboTimer)
	}
	s = sim.Update(s, testW, testH)
	if s.BullMarket || s.ComboTimer != 0 {
		t.Errorf("after expiry: bull=%v timer=%d", s.BullMarket, s.ComboTimer)
	}
}

func TestLiabilityClearsCombo(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 500
	s.Combo = 5
	s.BullMarket = true
	s.ComboTimer = 120
	s.Objects = []object.FallingObject{onPlayer(s, object.KindMaintenance)}

	got := sim.Update(s, testW, testH)

	if got.Lives != MaxLives-1 {
		t.Errorf("Lives = %d, want %d", got.Lives, MaxLives-1)
	}
	if got.Score != 450 {
		t.Errorf("Score = %d, want 450", got.Score)
	}
	if got.Combo != 0 || got.ComboTimer != 0 || got.BullMarket {
		t.Errorf("combo not cleared: combo=%d timer=%d bull=%v", got.Combo, got.ComboTimer, got.BullMarket)
	}
	if got.ScreenShake <= 0 {
		t.Error("liability should shake the screen")
	}
	if !hasCue(got, CueLiability) {
		t.Errorf("Cues = %v, want liability", got.Cues)
	}
}

func TestSameFrameCollisionsApplyInOrder(t *testing.T) {
	tests := []struct {
		name      string
		kinds     []object.Kind
		wantScore int
		wantCombo int
		wantCues  []Cue
	}{
		{
			name:      "asset then liability",
			kinds:     []object.Kind{object.KindStocks, object.KindMaintenance},
			wantScore: 550,
			wantCombo: 0,
			wantCues:  []Cue{CueAsset, CueLiability},
		},
		{
			name:      "liability then asset",
			kinds:     []object.Kind{object.KindMaintenance, object.KindStocks},
			wantScore: 550,
			wantCombo: 1,
			wantCues:  []Cue{CueLiability, CueAsset},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := quietSim(nil)
			s := playing()
			s.Score = 500
			s.Combo = 1
			for _, k := range tt.kinds {
				s.Objects = append(s.Objects, onPlayer(s, k))
			}

			got := sim.Update(s, testW, testH)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Combo != tt.wantCombo {
				t.Errorf("Combo = %d, want %d", got.Combo, tt.wantCombo)
			}
			if got.Lives != MaxLives-1 {
				t.Errorf("Lives = %d, want %d", got.Lives, MaxLives-1)
			}
			if !slices.Equal(got.Cues, tt.wantCues) {
				t.Errorf("Cues = %v, want %v", got.Cues, tt.wantCues)
			}
			if len(got.Objects) != 0 {
				t.Errorf("%d objects left, want both consumed", len(got.Objects))
			}
			for _, k := range tt.kinds {
				if got.Tally[k].Hits != 1 {
					t.Errorf("Tally[%v].Hits = %d, want 1", k, got.Tally[k].Hits)
				}
			}
		})
	}
}

func TestTerminalAndLiabilitySameFrame(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 2000
	s.Objects = []object.FallingObject{
		onPlayer(s, object.KindMarketCrash),
		onPlayer(s, object.KindInterestHike),
	}

	got := sim.Update(s, testW, testH)

	if got.Lives != 0 {
		t.Errorf("Lives = %d, want 0", got.Lives)
	}
	if got.Status != StatusGameOver {
		t.Errorf("Status = %v, want gameover", got.Status)
	}
	if got.Score != 900 {
		t.Errorf("Score = %d, want 900", got.Score)
	}
	crash, hike := got.Tally[object.KindMarketCrash], got.Tally[object.KindInterestHike]
	if crash.Hits != 1 || crash.Points != -1000 {
		t.Errorf("crash tally = %+v, want 1 hit for -1000", crash)
	}
	if hike.Hits != 1 || hike.Points != -100 {
		t.Errorf("interest hike tally = %+v, want 1 hit for -100", hike)
	}
	if got.TotalLosses() != 1100 {
		t.Errorf("TotalLosses = %d, want 1100", got.TotalLosses())
	}
}

func TestScoreNeverNegative(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 10
	s.Objects = []object.FallingObject{onPlayer(s, object.KindInterestHike)}

	got := sim.Update(s, testW, testH)
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
}

func TestTerminalHitEndsRun(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 2500
	s.Objects = []object.FallingObject{onPlayer(s, object.KindMarketCrash)}

	got := sim.Update(s, testW, testH)

	if got.Lives != 0 {
		t.Errorf("Lives = %d, want 0", got.Lives)
	}
	if got.Status != StatusGameOver {
		t.Errorf("Status = %v, want gameover", got.Status)
	}
	if got.Score != 1500 {
		t.Errorf("crash points should still apply: Score = %d", got.Score)
	}
	if !hasCue(got, CueCrash) || !hasCue(got, CueGameOver) {
		t.Errorf("Cues = %v, want crash and game-over", got.Cues)
	}
}

func TestLastLifeLiabilitySavesHighScore(t *testing.T) {
	scores := &fakeScores{stored: 100}
	sim := quietSim(scores)
	s := NewState(scores)
	s.Status = StatusPlaying
	s.Lives = 1
	s.Score = 800
	s.Objects = []object.FallingObject{onPlayer(s, object.KindMaintenance)}

	got := sim.Update(s, testW, testH)

	if got.Status != StatusGameOver || got.Lives != 0 {
		t.Fatalf("Status = %v Lives = %d, want gameover with 0 lives", got.Status, got.Lives)
	}
	if got.HighScore != 750 || !got.IsNewHighScore() {
		t.Errorf("HighScore = %d new=%v, want 750 new", got.HighScore, got.IsNewHighScore())
	}
	if !slices.Equal(scores.saves, []int{750}) {
		t.Errorf("saves = %v, want [750]", scores.saves)
	}
}

func TestHighScoreNotSavedWhenBeaten(t *testing.T) {
	scores := &fakeScores{stored: 5000}
	sim := quietSim(scores)
	s := NewState(scores)
	s.Status = StatusPlaying
	s.Lives = 1
	s.Score = 800
	s.Objects = []object.FallingObject{onPlayer(s, object.KindMaintenance)}

	got := sim.Update(s, testW, testH)
	if got.IsNewHighScore() || len(scores.saves) != 0 {
		t.Errorf("lower score should not be saved: saves=%v", scores.saves)
	}
}

func TestFailedSaveKeepsPlaying(t *testing.T) {
	scores := &fakeScores{err: errors.New("disk full")}
	sim := quietSim(scores)
	s := playing()
	s.Lives = 1
	s.Score = 300
	s.Objects = []object.FallingObject{onPlayer(s, object.KindMaintenance)}

	got := sim.Update(s, testW, testH)
	if got.HighScore != 250 {
		t.Errorf("HighScore = %d, want 250 even when saving fails", got.HighScore)
	}
}

func TestOffScreenObjectsRemoved(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.PlayerX = PlayerMinX
	def := object.Def(object.KindStocks)
	gone := object.NewFallingObject(def, testW-def.Size, testH+def.Size, 1)
	falling := object.NewFallingObject(def, testW-def.Size, 10, 1)
	s.Objects = []object.FallingObject{gone, falling}

	got := sim.Update(s, testW, testH)
	if len(got.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(got.Objects))
	}
	if got.Objects[0].Y != 10+def.Speed {
		t.Errorf("remaining object Y = %v, want %v", got.Objects[0].Y, 10+def.Speed)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Objects = []object.FallingObject{object.NewFallingObject(object.Def(object.KindStocks), 10, 10, 1)}
	s.Particles = object.ParticleBurst(sim.Rand, 100, 100, object.ValueBurst)
	s.Texts = []object.FloatingText{object.NewFloatingText(50, 50, "+100", object.TintLime)}

	objects := slices.Clone(s.Objects)
	particles := slices.Clone(s.Particles)
	texts := slices.Clone(s.Texts)

	_ = sim.Update(s, testW, testH)

	if !slices.Equal(s.Objects, objects) || !slices.Equal(s.Particles, particles) || !slices.Equal(s.Texts, texts) {
		t.Error("Update wrote through the input slices")
	}
}

func TestLivesStayInRange(t *testing.T) {
	sim := NewSim(7, nil, nil)
	s := playing()
	for range 5000 {
		s = sim.Update(s, testW, testH)
		if s.Lives < 0 || s.Lives > MaxLives {
			t.Fatalf("Lives = %d out of range", s.Lives)
		}
		if s.Score < 0 {
			t.Fatalf("Score = %d negative", s.Score)
		}
		if s.BullMarket != (s.ComboTimer > 0) {
			t.Fatalf("bull=%v timer=%d disagree", s.BullMarket, s.ComboTimer)
		}
		if s.Status != StatusPlaying {
			break
		}
	}
}

func TestDifficultyNeverDecreases(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 1200
	s = sim.Update(s, testW, testH)
	if s.Difficulty != 3 {
		t.Fatalf("Difficulty = %d, want 3", s.Difficulty)
	}
	s.Score = 0
	s = sim.Update(s, testW, testH)
	if s.Difficulty != 3 {
		t.Errorf("Difficulty dropped to %d", s.Difficulty)
	}
}

func TestMilestoneRaisesSpeed(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.Score = 2100

	got := sim.Update(s, testW, testH)
	if got.NextMilestone != 3000 {
		t.Errorf("NextMilestone = %d, want 3000", got.NextMilestone)
	}
	if math.Abs(got.SpeedMultiplier-MilestoneBump*MilestoneBump) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, want %v", got.SpeedMultiplier, MilestoneBump*MilestoneBump)
	}
}

func TestEffectsDecay(t *testing.T) {
	sim := quietSim(nil)
	s := playing()
	s.ScreenShake = 0.3
	s.FlashAlpha = 0.01

	got := sim.Update(s, testW, testH)
	if got.ScreenShake != 0 || got.FlashAlpha != 0 {
		t.Errorf("shake=%v flash=%v, want both clamped to 0", got.ScreenShake, got.FlashAlpha)
	}
	if got.Frame != 1 {
		t.Errorf("Frame = %d, want 1", got.Frame)
	}
}

func TestSpawnerFeedsObjects(t *testing.T) {
	sim := NewSim(3, nil, nil)
	s := playing()
	s.PlayerX = PlayerMinX
	for range 200 {
		s = sim.Update(s, testW, testH)
		if len(s.Objects) > 0 {
			return
		}
	}
	t.Error("no object spawned in 200 frames")
}
