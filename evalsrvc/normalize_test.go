package evalsrvc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortify-ai/backend/evalsrvc"
)

func TestNormalizeSpeechToText(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"I mostly use sea plus plus at work", "I mostly use C++ at work"},
		{"pie thon is my favourite language", "Python is my favourite language"},
		{"we store it in a data base", "we store it in a database"},
		{"I write sequel queries daily", "I write SQL queries daily"},
		{"experience with java script and node dot js", "experience with JavaScript and Node.js"},
		{"a hash map backed by a linked list", "a HashMap backed by a Linked List"},
		{"plain text stays untouched", "plain text stays untouched"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, evalsrvc.NormalizeSpeechToText(c.in))
	}
}
