// Package faq segments a block window into question/answer pairs.
//
// A block is a question when it starts with an ordinal ("3. "), when it
// carries bold markup and ends with "?", or when it is a short plain line
// ending with "?". Every other block that follows a question is appended to
// that question's answer.
package faq

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
)

const maxPlainQuestionLen = 200

var (
	ordinalPrefix  = regexp.MustCompile(`^\d+\.\s+`)
	inlineAnswer   = regexp.MustCompile(`(?s)^(\d+\.\s+.*?\?)(.*)$`)
	cleanOrdinal   = regexp.MustCompile(`^\d+\.\s*`)
	cleanQMarker   = regexp.MustCompile(`(?i)^Q:\s*`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	boldMarkup     = regexp.MustCompile(`(?i)<(strong|b)[\s>]`)
)

// IsQuestion reports whether a block opens a new question.
func IsQuestion(n block.Node) bool {
	text := n.Text()
	if text == "" {
		return false
	}
	if ordinalPrefix.MatchString(text) {
		return true
	}
	endsWithQ := strings.HasSuffix(text, "?")
	if endsWithQ && boldMarkup.MatchString(n.InnerMarkup()) {
		return true
	}
	return endsWithQ && utf8.RuneCountInString(text) < maxPlainQuestionLen
}

// CleanQuestion strips a leading ordinal and "Q:" marker and collapses
// whitespace.
func CleanQuestion(text string) string {
	text = cleanOrdinal.ReplaceAllString(text, "")
	text = cleanQMarker.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

// Extractor pairs questions with answers.
type Extractor struct {
	// CollapseAnswers collapses whitespace runs inside answer markup.
	CollapseAnswers bool
}

// New creates an Extractor that keeps answer markup verbatim.
func New() *Extractor {
	return &Extractor{}
}

// pending is the pair being accumulated.
type pending struct {
	question   string
	answer     []string
	collecting bool
}

func (p *pending) complete() bool {
	return p.question != "" && len(p.answer) > 0
}

// Extract returns the pairs found in blocks, in document order.
func (e *Extractor) Extract(blocks []block.Node) []core.QAPair {
	var (
		pairs []core.QAPair
		cur   pending
	)

	flush := func() {
		if cur.complete() {
			pairs = append(pairs, e.pair(cur))
		}
		cur = pending{}
	}

	for i, n := range blocks {
		text := n.Text()
		if text == "" {
			continue
		}

		if IsQuestion(n) {
			flush()
			cur = startQuestion(text)
			continue
		}
		if !cur.collecting {
			continue
		}

		cur.answer = append(cur.answer, n.OuterMarkup())

		// The next block opening a question closes this pair now, so the
		// flush at the top of the loop finds nothing left to emit.
		if i+1 < len(blocks) && IsQuestion(blocks[i+1]) {
			flush()
		}
	}
	flush()

	return pairs
}

// startQuestion begins a new pending pair. A numbered question with text
// after its "?" keeps that text as the start of the answer.
func startQuestion(text string) pending {
	p := pending{question: text, collecting: true}
	if m := inlineAnswer.FindStringSubmatch(text); m != nil {
		if rest := strings.TrimSpace(m[2]); rest != "" {
			p.question = m[1]
			p.answer = []string{rest}
		}
	}
	return p
}

func (e *Extractor) pair(p pending) core.QAPair {
	answer := strings.Join(p.answer, " ")
	if e.CollapseAnswers {
		answer = strings.TrimSpace(whitespaceRuns.ReplaceAllString(answer, " "))
	}
	return core.QAPair{
		Question: CleanQuestion(p.question),
		Answer:   answer,
	}
}
