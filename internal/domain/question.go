package domain

const (
	// OptionCount is the number of choices a full question offers.
	OptionCount = 4

	// MinPoolSize is the smallest pool a question can be generated from.
	MinPoolSize = OptionCount

	maxDistractorAttempts = 100
	maxPivotAttempts      = 100
)

// Direction selects which language is the prompt and which is the answer.
type Direction string

const (
	DirectionKoreanToSinhalese Direction = "korean-to-sinhalese"
	DirectionSinhaleseToKorean Direction = "sinhalese-to-korean"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionKoreanToSinhalese || d == DirectionSinhaleseToKorean
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == DirectionSinhaleseToKorean {
		return DirectionKoreanToSinhalese
	}
	return DirectionSinhaleseToKorean
}

// Prompt returns the field of e shown to the player.
func (d Direction) Prompt(e VocabularyEntry) string {
	if d == DirectionSinhaleseToKorean {
		return e.Secondary
	}
	return e.Primary
}

// Answer returns the field of e the player must pick.
func (d Direction) Answer(e VocabularyEntry) string {
	if d == DirectionSinhaleseToKorean {
		return e.Primary
	}
	return e.Secondary
}

// RandomSource is the randomness used for sampling and shuffling.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Question is one quiz round.
type Question struct {
	Prompt        string    `json:"prompt"`
	CorrectAnswer string    `json:"-"`
	Options       []string  `json:"options"`
	Direction     Direction `json:"direction"`
}

// GenerateQuestion builds a question from pool without touching any state.
//
// The pivot is drawn from every position except the first and last, and is
// re-rolled while it equals a neighbour by value. This keeps a stable pool
// from showing the same pair twice in a row; it is a heuristic, not a
// whole-pool no-repeat rule. Distractors are sampled with value dedup for at
// most 100 draws, so small or repetitive pools may yield fewer than four
// options.
func GenerateQuestion(pool []VocabularyEntry, direction Direction, rnd RandomSource) (Question, error) {
	if len(pool) < MinPoolSize {
		return Question{}, ErrInsufficientData
	}

	pivot := pickPivot(pool, rnd)
	word := pool[pivot]
	correct := direction.Answer(word)

	options := make([]string, 0, OptionCount)
	options = append(options, correct)
	options = append(options, sampleDistractors(pool, direction, correct, rnd)...)
	shuffle(options, rnd)

	return Question{
		Prompt:        direction.Prompt(word),
		CorrectAnswer: correct,
		Options:       options,
		Direction:     direction,
	}, nil
}

// pickPivot returns an index in [1, len(pool)-2] whose entry differs from
// both neighbours. If no such index turns up within maxPivotAttempts the last
// draw is used.
func pickPivot(pool []VocabularyEntry, rnd RandomSource) int {
	inner := len(pool) - 2
	idx := 1 + rnd.Intn(inner)
	for attempt := 1; attempt < maxPivotAttempts; attempt++ {
		if pool[idx] != pool[idx-1] && pool[idx] != pool[idx+1] {
			break
		}
		idx = 1 + rnd.Intn(inner)
	}
	return idx
}

func sampleDistractors(pool []VocabularyEntry, direction Direction, correct string, rnd RandomSource) []string {
	want := OptionCount - 1
	distractors := make([]string, 0, want)
	seen := map[string]struct{}{correct: {}}

	for attempt := 0; attempt < maxDistractorAttempts && len(distractors) < want; attempt++ {
		candidate := direction.Answer(pool[rnd.Intn(len(pool))])
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		distractors = append(distractors, candidate)
	}
	return distractors
}

// shuffle is a Fisher-Yates shuffle driven by rnd.
func shuffle(items []string, rnd RandomSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
