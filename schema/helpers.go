package schema

import (
	"fmt"
	"strings"
)

// sparkRunes are the eight block glyphs used for win-percentage sparklines,
// lowest to highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// FormatRecord formats a win-loss-tie record like "87-45" or "87-45-2".
// The tie component is omitted when zero, matching how leagues without
// ties display records.
func FormatRecord(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}

// FormatWinPct formats a win percentage in the conventional ".714" style,
// with "1.000" for a perfect record.
func FormatWinPct(pct float64) string {
	s := fmt.Sprintf("%.3f", pct)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	return s
}

// Sparkline renders win percentages as a compact block-glyph trend line.
// Values are expected in [0,1]; out-of-range values are clamped. An empty
// input returns an empty string.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(sparkRunes)-1))
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

// ParsePlayoffResult normalizes a raw playoff result string from imported
// data. Unknown values and explicit "none"/"null" markers normalize to
// PlayoffNone rather than erroring, since imports are not trusted input.
func ParsePlayoffResult(raw string) PlayoffResult {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PlayoffChampion):
		return PlayoffChampion
	case string(PlayoffRunnerUp), "runnerup", "runner-up":
		return PlayoffRunnerUp
	case string(PlayoffElim):
		return PlayoffElim
	case string(PlayoffMissed):
		return PlayoffMissed
	default:
		return PlayoffNone
	}
}
