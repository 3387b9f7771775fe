package evalsrvc

import "regexp"

// Candidates answer through a speech-to-text frontend that routinely
// mangles technical vocabulary. These corrections run before evaluation
// so the model judges what the candidate meant, not what the STT heard.
var sttCorrections = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bsea\s+programming\b`), "C programming"},
	{regexp.MustCompile(`(?i)\bsee\s+programming\b`), "C programming"},
	{regexp.MustCompile(`(?i)\bc\s+programming\b`), "C programming"},
	{regexp.MustCompile(`(?i)\bsea\s+plus\s+plus\b`), "C++"},
	{regexp.MustCompile(`(?i)\bsee\s+plus\s+plus\b`), "C++"},
	{regexp.MustCompile(`(?i)\bc\s+plus\s+plus\b`), "C++"},
	{regexp.MustCompile(`(?i)\bjava\s+scripts?\b`), "JavaScript"},
	{regexp.MustCompile(`(?i)\bpie\s+thon\b`), "Python"},
	{regexp.MustCompile(`(?i)\bpie\s+ton\b`), "Python"},
	{regexp.MustCompile(`(?i)\bsee\s+sharp\b`), "C#"},
	{regexp.MustCompile(`(?i)\bc\s+sharp\b`), "C#"},
	{regexp.MustCompile(`(?i)\barray\s+list\b`), "ArrayList"},
	{regexp.MustCompile(`(?i)\blinked\s+list\b`), "Linked List"},
	{regexp.MustCompile(`(?i)\bhash\s+map\b`), "HashMap"},
	{regexp.MustCompile(`(?i)\bhash\s+table\b`), "HashTable"},
	{regexp.MustCompile(`(?i)\bbinary\s+tree\b`), "Binary Tree"},
	{regexp.MustCompile(`(?i)\bdata\s+base\b`), "database"},
	{regexp.MustCompile(`(?i)\bstructured\s+query\s+language\b`), "SQL"},
	{regexp.MustCompile(`(?i)\bsequel\b`), "SQL"},
	{regexp.MustCompile(`(?i)\breact\s+dot\s+js\b`), "React.js"},
	{regexp.MustCompile(`(?i)\bnode\s+dot\s+js\b`), "Node.js"},
	{regexp.MustCompile(`(?i)\bvue\s+dot\s+js\b`), "Vue.js"},
	{regexp.MustCompile(`(?i)\bangular\s+dot\s+js\b`), "Angular.js"},
}

// NormalizeSpeechToText fixes common STT misrecognitions of technical
// terms.
func NormalizeSpeechToText(text string) string {
	if text == "" {
		return text
	}
	normalized := text
	for _, c := range sttCorrections {
		normalized = c.pattern.ReplaceAllString(normalized, c.replacement)
	}
	return normalized
}
