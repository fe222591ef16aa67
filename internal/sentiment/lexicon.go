// internal/sentiment/lexicon.go
package sentiment

// polarityLexicon maps opinion words to a fixed polarity in [-1, 1]. The
// table is intentionally small and review-oriented; unknown words simply
// contribute nothing.
var polarityLexicon = map[string]float64{
	// positive
	"excellent":   1.0,
	"perfect":     0.9,
	"amazing":     0.9,
	"fantastic":   0.9,
	"awesome":     0.9,
	"outstanding": 0.9,
	"great":       0.8,
	"best":        0.8,
	"love":        0.7,
	"loved":       0.7,
	"loves":       0.7,
	"impressive":  0.7,
	"beautiful":   0.7,
	"good":        0.7,
	"happy":       0.6,
	"pleased":     0.6,
	"reliable":    0.6,
	"durable":     0.6,
	"nice":        0.6,
	"comfortable": 0.5,
	"sturdy":      0.5,
	"solid":       0.5,
	"smooth":      0.5,
	"crisp":       0.5,
	"responsive":  0.5,
	"accurate":    0.5,
	"recommend":   0.5,
	"easy":        0.45,
	"fast":        0.4,
	"bright":      0.4,
	"quiet":       0.4,
	"clear":       0.4,
	"worth":       0.4,
	"works":       0.3,
	"decent":      0.3,
	"fine":        0.2,
	"okay":        0.1,

	// negative
	"terrible":      -1.0,
	"awful":         -1.0,
	"worst":         -1.0,
	"horrible":      -0.9,
	"useless":       -0.8,
	"defective":     -0.8,
	"hate":          -0.8,
	"hated":         -0.8,
	"bad":           -0.7,
	"broken":        -0.7,
	"waste":         -0.7,
	"faulty":        -0.7,
	"disappointed":  -0.65,
	"disappointing": -0.65,
	"poor":          -0.6,
	"died":          -0.6,
	"broke":         -0.5,
	"flimsy":        -0.5,
	"uncomfortable": -0.5,
	"blurry":        -0.5,
	"laggy":         -0.5,
	"annoying":      -0.5,
	"overpriced":    -0.5,
	"slow":          -0.4,
	"noisy":         -0.4,
	"weak":          -0.4,
	"stopped":       -0.4,
	"refund":        -0.4,
	"difficult":     -0.4,
	"cheap":         -0.3,
	"returned":      -0.3,
}

// negators flip the polarity of the opinion word they precede.
var negators = map[string]bool{
	"not":      true,
	"no":       true,
	"never":    true,
	"nothing":  true,
	"hardly":   true,
	"barely":   true,
	"dont":     true,
	"doesnt":   true,
	"didnt":    true,
	"isnt":     true,
	"wasnt":    true,
	"wont":     true,
	"cant":     true,
	"couldnt":  true,
	"wouldnt":  true,
	"shouldnt": true,
}

// stopwords are excluded from feature-phrase candidates. Words shorter than
// three characters never become candidates, so only longer fillers appear.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "these": true, "those": true, "was": true, "were": true,
	"are": true, "its": true, "has": true, "have": true, "had": true,
	"but": true, "very": true, "really": true, "you": true, "your": true,
	"they": true, "them": true, "their": true, "will": true, "would": true,
	"can": true, "could": true, "just": true, "than": true, "then": true,
	"when": true, "what": true, "out": true, "all": true, "also": true,
	"been": true, "being": true, "from": true, "into": true, "more": true,
	"most": true, "much": true, "some": true, "such": true, "too": true,
	"use": true, "used": true, "using": true, "get": true, "got": true,
	"one": true, "after": true, "before": true, "while": true, "about": true,
	"because": true, "every": true, "each": true, "only": true, "over": true,
	"under": true, "again": true, "still": true, "even": true, "ever": true,
	"here": true, "there": true, "did": true, "does": true, "doing": true,
	"who": true, "how": true, "why": true, "which": true, "where": true,
	"him": true, "her": true, "his": true, "she": true, "our": true,
	"ours": true, "yours": true, "any": true, "both": true, "few": true,
	"now": true, "own": true, "same": true, "other": true,
}
