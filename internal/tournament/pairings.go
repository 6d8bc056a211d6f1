package tournament

// Pair is an unordered pairing; First precedes Second in the input order.
type Pair[T any] struct {
	First  T
	Second T
}

// GeneratePairings returns every pair (participants[i], participants[j]) with
// i < j, in ascending index order.
func GeneratePairings[T any](participants []T) []Pair[T] {
	n := len(participants)
	if n < 2 {
		return []Pair[T]{}
	}
	pairs := make([]Pair[T], 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair[T]{First: participants[i], Second: participants[j]})
		}
	}
	return pairs
}
