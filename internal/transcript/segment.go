package transcript

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSentenceLength is the length a trimmed fragment must exceed to count as a sentence.
const MinSentenceLength = 10

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Sentences yields the candidate sentences of a transcript in source order:
// fragments between runs of '.', '!' and '?', trimmed, longer than
// MinSentenceLength characters.
func Sentences(transcript string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, piece := range sentenceBreak.Split(transcript, -1) {
			s := strings.TrimSpace(piece)
			if utf8.RuneCountInString(s) <= MinSentenceLength {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Segment returns all candidate sentences of a transcript.
func Segment(transcript string) []string {
	var out []string
	for s := range Sentences(transcript) {
		out = append(out, s)
	}
	return out
}
