package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// pattern is the grammatical shape of an item's opening word.
type pattern string

const (
	patternImperative pattern = "imperative-verb"
	patternGerund     pattern = "gerund"
	patternNoun       pattern = "noun-phrase"
	patternOther      pattern = "other"
)

// article renders the pattern for use inside a sentence.
func (p pattern) article() string {
	switch p {
	case patternImperative:
		return "an imperative verb"
	case patternGerund:
		return "a gerund"
	case patternNoun:
		return "a noun phrase"
	default:
		return "a number or symbol"
	}
}

var gerundRe = regexp.MustCompile(`^\p{Ll}{2,}ing$`)

// ingNouns end in -ing but are not gerunds.
var ingNouns = map[string]bool{
	"thing": true, "things": true, "nothing": true, "something": true,
	"anything": true, "everything": true, "string": true, "spring": true,
	"morning": true, "evening": true, "during": true, "ceiling": true,
	"king": true, "ring": true, "wing": true, "sibling": true,
}

// imperativeVerbs is a closed list of common action verbs that open
// instruction-style bullets.
var imperativeVerbs = toSet(
	"add", "adjust", "allow", "analyze", "apply", "assign", "avoid", "build",
	"check", "choose", "clean", "clarify", "close", "collect", "combine",
	"configure", "confirm", "connect", "create", "cut", "define", "delete",
	"deliver", "deploy", "describe", "design", "document", "download",
	"drive", "enable", "ensure", "establish", "evaluate", "explain", "export",
	"find", "fix", "follow", "gather", "generate", "get", "give", "identify",
	"implement", "import", "improve", "include", "increase", "install",
	"investigate", "keep", "launch", "lead", "limit", "load", "maintain",
	"make", "manage", "measure", "merge", "migrate", "monitor", "move",
	"open", "optimize", "organize", "plan", "prepare", "prevent",
	"prioritize", "protect", "provide", "publish", "reduce", "refactor",
	"remove", "rename", "replace", "research", "resolve", "restart",
	"restore", "review", "rewrite", "run", "save", "schedule", "secure",
	"select", "send", "share", "simplify", "split", "start", "stop",
	"streamline", "submit", "support", "track", "train", "update",
	"upgrade", "use", "validate", "verify", "write",
)

// classify returns the pattern of text's first word.
func classify(text string) pattern {
	first := firstWord(text)
	r, _ := utf8.DecodeRuneInString(first)
	if first == "" || !unicode.IsLetter(r) {
		return patternOther
	}

	w := strings.ToLower(strings.TrimFunc(first, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))

	switch {
	case imperativeVerbs[w]:
		return patternImperative
	case gerundRe.MatchString(w) && !ingNouns[w]:
		return patternGerund
	default:
		return patternNoun
	}
}

// dominantPattern returns the most frequent pattern; ties go to the one
// seen first.
func dominantPattern(patterns []pattern) pattern {
	counts := make(map[pattern]int)
	var best pattern
	for _, p := range patterns {
		counts[p]++
	}
	for _, p := range patterns {
		if best == "" || counts[p] > counts[best] {
			best = p
		}
	}
	return best
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
