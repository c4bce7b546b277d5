package textnorm

import "strings"

// StopwordSet is an immutable set of lower-case tokens excluded from keyword counts.
type StopwordSet struct {
	words map[string]struct{}
}

func NewStopwordSet(words ...string) StopwordSet {
	s := StopwordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// With returns a new set holding s and extra. s is not modified.
func (s StopwordSet) With(extra ...string) StopwordSet {
	words := make([]string, 0, len(s.words)+len(extra))
	for w := range s.words {
		words = append(words, w)
	}
	return NewStopwordSet(append(words, extra...)...)
}

func (s StopwordSet) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

func (s StopwordSet) Len() int {
	return len(s.words)
}

// DefaultStopwords is the base word-cloud list joined with the Spanish survey fillers.
func DefaultStopwords() StopwordSet {
	return NewStopwordSet(append(append([]string{}, baseStopwords...), domainStopwords...)...)
}

// baseStopwords is the stock list shipped with the word cloud renderer.
var baseStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "aren't", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "can't", "cannot", "com", "could", "couldn't", "did", "didn't",
	"do", "does", "doesn't", "doing", "don't", "down", "during", "each", "else", "ever", "few",
	"for", "from", "further", "get", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "hence", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "however", "http", "i", "i'd", "i'll", "i'm",
	"i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself", "just", "k",
	"let's", "like", "me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not", "of",
	"off", "on", "once", "only", "or", "other", "otherwise", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "r", "same", "shall", "shan't", "she", "she'd",
	"she'll", "she's", "should", "shouldn't", "since", "so", "some", "such", "than", "that",
	"that's", "the", "their", "theirs", "them", "themselves", "then", "there", "there's",
	"therefore", "these", "they", "they'd", "they'll", "they're", "they've", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd",
	"we'll", "we're", "we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's", "with", "won't",
	"would", "wouldn't", "www", "you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
}

var domainStopwords = []string{
	"y", "de", "al", "el", "la", "los", "las", "que", "con", "en", "como", "para",
	"mi", "un", "q", "ya", "tenia", "hecho", "cuando", "mas", "habia", "del",
	"muy", "gral", "si", "_x000d", "_x000d_", "hay", "entre", "lo", "es", "hacia", "mis", "una",
	"eso", "su", "sus", "esa", "esas", "cual", "cuales", "tambien", "por", "sin", "se", "sobre",
	"ante", "rt", "o", "estar", "bien", "tener", "ser", "todo", "hacer", "cosa", "gracias",
	"otra", "otro", "otros", "otras",
}
