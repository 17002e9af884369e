package buzzword

// MaxIntensity is the highest substitution tier.
const MaxIntensity = 3

// Apply rewrites s with tiers 1..intensity applied cumulatively in ascending
// order. Intensity 0 (or lower) returns s unchanged; intensities above
// MaxIntensity are clamped. The function is pure and total.
func Apply(s string, intensity int) string {
	if intensity <= 0 {
		return s
	}
	if intensity > MaxIntensity {
		intensity = MaxIntensity
	}

	out := s
	for level := 1; level <= intensity; level++ {
		for _, rule := range tiers[level] {
			out = rule.apply(out)
		}
	}
	return out
}
