package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/object"
)

// wrapWidth is the longest overlay line, in runes, before word wrapping.
const wrapWidth = 60

// insights maps each kind to the label explaining it.
var insights = [object.NumKinds]string{
	object.KindStocks:          "whyStocks",
	object.KindEducation:       "whyEducation",
	object.KindFamilyHome:      "whyRealEstate",
	object.KindCommercialPlaza: "whyCommercial",
	object.KindMaintenance:     "whyMaintenance",
	object.KindInterestHike:    "whyInterest",
	object.KindMarketCrash:     "whyCrash",
}

func drawMenu(dst draw.Surface, s loop.State, w, h float64, labels locale.Resolver) {
	dst.FillRect(0, 0, w, h, DeepByte, 0.55)

	cx := w / 2
	y := h * 0.18
	dst.Text(cx, y, labels.Label("title"), Lime, draw.AlignCenter)
	y += LineHeight
	dst.Text(cx, y, labels.Label("advancedWealthSimulator"), Grid, draw.AlignCenter)
	y += LineHeight * 1.5
	dst.Text(cx, y, labels.Label("tagline"), White, draw.AlignCenter)
	y += LineHeight * 1.5
	dst.Text(cx, y, labels.Label("highScore")+": "+FormatPoints(s.HighScore), Gold, draw.AlignCenter)

	y += LineHeight * 2
	dst.Text(cx, y, labels.Label("controlsLabel"), Grid, draw.AlignCenter)
	for _, key := range []string{"controlsMove", "controlsGoals", "controlsMute", "controlsQuit"} {
		y += LineHeight
		dst.Text(cx, y, labels.Label(key), White, draw.AlignCenter)
	}

	y += LineHeight * 2
	dst.Text(cx, y, labels.Label("pressStart"), Lime, draw.AlignCenter)
}

func drawHUD(dst draw.Surface, s loop.State, w, h float64, labels locale.Resolver) {
	const margin = 16.0

	dst.Text(margin, margin, labels.Label("lives")+" "+Hearts(s.Lives), Pink, draw.AlignLeft)

	dst.Text(w-margin, margin, FormatPoints(s.Score), Lime, draw.AlignRight)
	dst.Text(w-margin, margin+LineHeight, labels.Label("level")+" "+strconv.Itoa(s.Difficulty), Grid, draw.AlignRight)

	if s.Combo > 1 {
		dst.Text(w-margin, margin+2*LineHeight, fmt.Sprintf("%s x%d", labels.Label("combo"), s.Combo), Gold, draw.AlignRight)
	}

	if s.BullMarket {
		secs := (s.ComboTimer + 59) / 60
		dst.Text(w/2, margin, fmt.Sprintf("%s %ds", labels.Label("bullMarket"), secs), Gold, draw.AlignCenter)
	}

	if s.Muted {
		dst.Text(margin, h-margin, labels.Label("muted"), DeepByte, draw.AlignLeft)
	}
}

func drawGameOver(dst draw.Surface, s loop.State, w, h float64, labels locale.Resolver) {
	dst.FillRect(0, 0, w, h, DeepByte, 0.75)

	cx := w / 2
	y := h * 0.1
	dst.Text(cx, y, labels.Label("marketCrash"), Pink, draw.AlignCenter)
	y += LineHeight * 1.5

	if s.IsNewHighScore() {
		dst.Text(cx, y, labels.Label("newHighScore"), Lime, draw.AlignCenter)
		y += LineHeight
	}
	dst.Text(cx, y, labels.Label("finalPortfolio")+": "+FormatPoints(s.Score), White, draw.AlignCenter)
	y += LineHeight * 1.5

	dst.Text(cx, y, labels.Label("investmentSummary"), Grid, draw.AlignCenter)
	y += LineHeight

	left, right := w*0.25, w*0.75
	dst.Text(left, y, labels.Label("assetBreakdown"), Lime, draw.AlignCenter)
	dst.Text(right, y, labels.Label("liabilityBreakdown"), Pink, draw.AlignCenter)
	ly, ry := y+LineHeight, y+LineHeight
	for _, kind := range object.Kinds() {
		def := object.Def(kind)
		tally := s.Tally[kind]
		line := fmt.Sprintf("%s x%d  %s", labels.Label(def.Label), tally.Hits, object.PointsText(tally.Points))
		if def.Category == object.Asset {
			dst.Text(left, ly, line, White, draw.AlignCenter)
			ly += LineHeight
		} else {
			dst.Text(right, ry, line, White, draw.AlignCenter)
			ry += LineHeight
		}
	}
	y = max(ly, ry) + LineHeight*0.5

	gains, losses := s.TotalGains(), s.TotalLosses()
	dst.Text(left, y, labels.Label("totalGains")+": +"+FormatPoints(gains), Lime, draw.AlignCenter)
	dst.Text(right, y, labels.Label("totalLosses")+": -"+FormatPoints(losses), Pink, draw.AlignCenter)
	y += LineHeight * 1.5

	verdict := "performanceAnalysisPositive"
	if losses > gains {
		verdict = "performanceAnalysisNegative"
	}
	for _, line := range Wrap(labels.Label(verdict), wrapWidth) {
		dst.Text(cx, y, line, White, draw.AlignCenter)
		y += LineHeight
	}

	if kind, ok := mostHit(s); ok {
		y += LineHeight * 0.5
		dst.Text(cx, y, labels.Label("smartInvesting"), Gold, draw.AlignCenter)
		y += LineHeight
		for _, line := range Wrap(labels.Label(insights[kind]), wrapWidth) {
			dst.Text(cx, y, line, White, draw.AlignCenter)
			y += LineHeight
		}
	}

	dst.Text(cx, h-LineHeight*1.5, labels.Label("pressRetry"), Lime, draw.AlignCenter)
}

// mostHit returns the kind collided with most often, earliest catalog row on ties.
func mostHit(s loop.State) (object.Kind, bool) {
	best, hits := object.Kind(0), 0
	for _, kind := range object.Kinds() {
		if n := s.Tally[kind].Hits; n > hits {
			best, hits = kind, n
		}
	}
	return best, hits > 0
}

// Hearts draws remaining lives out of the maximum.
func Hearts(lives int) string {
	lives = min(max(lives, 0), loop.MaxLives)
	return strings.Repeat("♥", lives) + strings.Repeat("♡", loop.MaxLives-lives)
}

// FormatPoints renders n with thousands separators.
func FormatPoints(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}

// Wrap splits s into lines of at most width runes at word boundaries.
// Words longer than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
