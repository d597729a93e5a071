package tables

// WordNumbers maps spelled-out numbers to digit strings. Twenty is enough:
// nobody asks for "twenty-one mana" in words.
var WordNumbers = map[string]string{
	"zero":      "0",
	"one":       "1",
	"two":       "2",
	"three":     "3",
	"four":      "4",
	"five":      "5",
	"six":       "6",
	"seven":     "7",
	"eight":     "8",
	"nine":      "9",
	"ten":       "10",
	"eleven":    "11",
	"twelve":    "12",
	"thirteen":  "13",
	"fourteen":  "14",
	"fifteen":   "15",
	"sixteen":   "16",
	"seventeen": "17",
	"eighteen":  "18",
	"nineteen":  "19",
	"twenty":    "20",
}

// StopWords are filler words stripped from the residual before concept
// matching. Kept deliberately short; over-stripping destroys concept phrases.
var StopWords = map[string]bool{
	"that": true, "which": true, "with": true, "the": true, "a": true,
	"an": true, "and": true, "cards": true, "card": true, "is": true, "are": true,
	"for": true, "in": true, "my": true, "some": true, "me": true,
	"find": true, "show": true, "get": true, "want": true, "need": true,
	"good": true, "best": true,
}
