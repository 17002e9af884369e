package compose

// Seed derives the deterministic random seed for one polish request from its
// input text and requested variant count. Identical requests within a process
// therefore draw the same phrase sequence. Pure function; the caller feeds
// the result into its own rand.Source rather than any shared generator.
func Seed(text string, suggestions int) int64 {
	return int64(len(text) + suggestions)
}
