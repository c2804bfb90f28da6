package types

// Per-kind content payload shapes. One struct per activity kind; the Activity
// row stores whichever one applies, marshalled into its JSON column.

type ColoringContent struct {
	ImageURL string   `json:"imageUrl"`
	Colors   []string `json:"colors"`
}

type MathProblem struct {
	Question string `json:"question"`
	Answer   int    `json:"answer"`
}

type MathContent struct {
	Problems []MathProblem `json:"problems"`
}

type LettersContent struct {
	Letters []string `json:"letters"`
	Words   []string `json:"words"`
}

type PuzzleContent struct {
	Pieces   int    `json:"pieces"`
	ImageURL string `json:"imageUrl"`
}

type DrawingContent struct {
	Prompt string   `json:"prompt"`
	Tools  []string `json:"tools"`
}

type WordsContent struct {
	Vocabulary []string `json:"vocabulary"`
}

type DictationContent struct {
	Sentences []string `json:"sentences"`
}

type PaintByNumberContent struct {
	ImageURL string            `json:"imageUrl"`
	ColorMap map[string]string `json:"colorMap"`
}
