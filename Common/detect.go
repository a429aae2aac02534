package common

import (
	"log/slog"

	"github.com/saintfish/chardet"
)

// preferredCharset wins ties among equally confident detector results.
const preferredCharset = "windows-1251"

// GetBestCharset returns chardet's best guess for input. It is advisory only
// and never changes which candidate is selected.
func GetBestCharset(input []byte) (chardet.Result, bool) {
	if len(input) == 0 {
		return chardet.Result{}, false
	}
	results, err := chardet.NewTextDetector().DetectAll(input)
	if err != nil || len(results) == 0 {
		return chardet.Result{}, false
	}
	return pickBest(results), true
}

// pickBest expects results sorted by descending confidence, as chardet returns them.
func pickBest(results []chardet.Result) chardet.Result {
	maxConfidence := results[0].Confidence
	for _, result := range results {
		if result.Confidence < maxConfidence {
			break
		}
		if result.Charset == preferredCharset {
			return result
		}
	}
	return results[0]
}

// checkSelection logs a warning when a legacy codepage was picked but the
// detector confidently names a different charset. A wrong 8-bit codepage
// decodes without error, so the fallback order alone cannot catch it.
func checkSelection(logger *slog.Logger, data []byte, selected Candidate, minConfidence int) {
	if selected.Name == "utf-8" {
		return
	}
	guess, ok := GetBestCharset(data)
	if !ok {
		return
	}
	logger.Debug("detector guess", "charset", guess.Charset, "language", guess.Language, "confidence", guess.Confidence)
	if guess.Confidence < minConfidence || selected.Matches(guess.Charset) {
		return
	}
	attrs := []any{
		"selected", selected.Name,
		"detected", guess.Charset,
		"confidence", guess.Confidence,
	}
	if alt, known := candidateFor(guess.Charset); known {
		attrs = append(attrs, "candidate", alt.Name)
	}
	logger.Warn("selected encoding may be wrong", attrs...)
}

// candidateFor returns the first default candidate a detector charset refers to.
func candidateFor(charset string) (Candidate, bool) {
	for _, c := range Candidates() {
		if c.Matches(charset) {
			return c, true
		}
	}
	return Candidate{}, false
}
