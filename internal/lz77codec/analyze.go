// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lz77codec

import "math"

// SampleSize is the amount of leading data the analyzer inspects for
// match prediction and pattern mining.
const SampleSize = 10000

// Pattern is one of the top repeated substrings found during mining.
type Pattern struct {
	Text          string
	Length        int
	Count         int
	EstBytesSaved int
}

// Analysis is the result of analyzing a buffer for LZ77 effectiveness.
type Analysis struct {
	Entropy          float64
	SampleSize       int
	MatchesFound     int
	MatchRatio       float64
	AverageMatchLen  float64
	Patterns         []Pattern
	Recommendation   string
}

// Entropy computes the Shannon entropy, in bits per byte, of data's
// byte-frequency distribution.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	h := 0.0
	n := float64(len(data))
	for _, c := range freq {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// Analyze computes entropy over the full file, predicts matches over
// a sample via the same longest-match procedure the encoder uses, and
// mines the top 5 repeated substrings.
func Analyze(data []byte, window, lookahead int) Analysis {
	entropy := Entropy(data)

	sampleSize := len(data)
	if sampleSize > SampleSize {
		sampleSize = SampleSize
	}

	a := Analysis{Entropy: entropy, SampleSize: sampleSize}
	if sampleSize == 0 {
		a.Recommendation = recommend(entropy, 0)
		return a
	}

	m := NewMatcher(window, lookahead)
	totalMatchLen := 0
	p := 0
	for p < sampleSize {
		_, length := m.Find(data, p)
		if length >= MinMatch {
			a.MatchesFound++
			totalMatchLen += length
			end := p + length
			if end > sampleSize {
				end = sampleSize
			}
			for k := p; k < end && k+3 <= len(data); k++ {
				m.Insert(data, k)
			}
			p = end
			continue
		}
		m.Insert(data, p)
		p++
	}
	if a.MatchesFound > 0 {
		a.AverageMatchLen = float64(totalMatchLen) / float64(a.MatchesFound)
	}
	a.MatchRatio = float64(a.MatchesFound) / float64(sampleSize)
	a.Patterns = minePatterns(data[:sampleSize])
	a.Recommendation = recommend(entropy, a.MatchRatio)
	return a
}

func recommend(entropy, matchRatio float64) string {
	switch {
	case entropy > 7.5:
		return "not recommended - appears random/compressed"
	case matchRatio < 0.05:
		return "few patterns"
	case matchRatio < 0.15:
		return "modest"
	case matchRatio < 0.30:
		return "good"
	default:
		return "highly recommended"
	}
}

// minePatterns counts substrings of length 4..min(20, len(sample)/4)
// that occur more than once, keeping the top 5 by frequency.
func minePatterns(sample []byte) []Pattern {
	maxLen := len(sample) / 4
	if maxLen > 20 {
		maxLen = 20
	}
	if maxLen < 4 {
		return nil
	}

	var found []Pattern
	for length := 4; length <= maxLen; length++ {
		counts := make(map[string]int)
		for i := 0; i+length <= len(sample); i++ {
			counts[string(sample[i:i+length])]++
		}
		for text, count := range counts {
			if count <= 1 {
				continue
			}
			found = append(found, Pattern{
				Text:          text,
				Length:        length,
				Count:         count,
				EstBytesSaved: (length - 4) * (count - 1),
			})
		}
	}

	sortPatternsDesc(found)
	if len(found) > 5 {
		found = found[:5]
	}
	return found
}

func sortPatternsDesc(p []Pattern) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && p[j].Count > p[j-1].Count; j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
}
