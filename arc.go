package yourdio

import "math"

// ChapterIntensity maps a chapter index to the target intensity of the
// structural arc: a value in the arc's min..max range that the
// orchestration uses to scale tempo and polyphony per chapter. Unknown
// arc types use the parabolic shape. A zero StructuralArc behaves like
// the default parabolic 0.2..0.8 arc peaking mid-composition.
func ChapterIntensity(arc StructuralArc, chapter, total int) float64 {
	if arc == (StructuralArc{}) {
		arc = StructuralArc{Type: "parabolic", MinIntensity: 0.2, MaxIntensity: 0.8, ClimaxChapter: total / 2}
	}
	var normalized, climax float64
	if total > 1 {
		normalized = float64(chapter) / float64(total-1)
		climax = float64(arc.ClimaxChapter) / float64(total-1)
	}
	var shape float64
	switch arc.Type {
	case "slow_burn":
		shape = normalized
	case "descending":
		shape = 1 - normalized
	case "flat":
		shape = 0.5
	default: // parabolic, peaking at the climax chapter
		shape = 1 - 2*math.Abs(normalized-climax)
	}
	shape = math.Min(math.Max(shape, 0), 1)
	return arc.MinIntensity + (arc.MaxIntensity-arc.MinIntensity)*shape
}
