// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	unitWords = map[string]int{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
		"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
		"nineteen": 19,
	}
	tensWords = map[string]int{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	scaleWords = map[string]int{
		"hundred":  100,
		"thousand": 1000,
	}
)

// wordRe matches a single alphabetic word, with an optional hyphenated tail
// so "twenty-five" is one token.
var wordRe = regexp.MustCompile(`[A-Za-z]+(?:-[A-Za-z]+)?`)

func isNumberWord(w string) bool {
	w = strings.ToLower(w)
	if i := strings.IndexByte(w, '-'); i > 0 {
		_, tens := tensWords[w[:i]]
		_, unit := unitWords[w[i+1:]]
		return tens && unit
	}
	_, u := unitWords[w]
	_, t := tensWords[w]
	_, s := scaleWords[w]
	return u || t || s
}

// wordsValue evaluates a run of number words ("three hundred fifty" = 350).
func wordsValue(words []string) int {
	total, current := 0, 0
	for _, w := range words {
		w = strings.ToLower(w)
		if i := strings.IndexByte(w, '-'); i > 0 {
			current += tensWords[w[:i]] + unitWords[w[i+1:]]
			continue
		}
		if v, ok := unitWords[w]; ok {
			current += v
			continue
		}
		if v, ok := tensWords[w]; ok {
			current += v
			continue
		}
		switch scaleWords[w] {
		case 100:
			if current == 0 {
				current = 1
			}
			current *= 100
		case 1000:
			if current == 0 {
				current = 1
			}
			total += current * 1000
			current = 0
		}
	}
	return total + current
}

// rewriteNumberWords replaces runs of English number words with digits.
// Words in a run may be separated by spaces, and "and" is accepted directly
// after "hundred" or "thousand" ("three hundred and fifty").
func rewriteNumberWords(s string) string {
	locs := wordRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for i := 0; i < len(locs); {
		if !isNumberWord(s[locs[i][0]:locs[i][1]]) {
			i++
			continue
		}

		words := []string{s[locs[i][0]:locs[i][1]]}
		j := i + 1
		for j < len(locs) {
			gap := s[locs[j-1][1]:locs[j][0]]
			if strings.TrimSpace(gap) != "" {
				break
			}
			w := s[locs[j][0]:locs[j][1]]
			if isNumberWord(w) {
				words = append(words, w)
				j++
				continue
			}
			prev := strings.ToLower(words[len(words)-1])
			if strings.EqualFold(w, "and") && scaleWords[prev] > 0 && j+1 < len(locs) &&
				strings.TrimSpace(s[locs[j][1]:locs[j+1][0]]) == "" &&
				isNumberWord(s[locs[j+1][0]:locs[j+1][1]]) {
				j++
				continue
			}
			break
		}

		b.WriteString(s[last:locs[i][0]])
		b.WriteString(strconv.Itoa(wordsValue(words)))
		last = locs[j-1][1]
		i = j
	}
	b.WriteString(s[last:])
	return b.String()
}
