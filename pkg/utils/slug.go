package utils

import (
	"math/rand"
	"regexp"
	"strings"
)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
)

// SlugBase is the deterministic part of a slug.
func SlugBase(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "route"
	}
	return s
}

// BuildSlug returns a slug candidate with a short random suffix.
func BuildSlug(title string) string {
	return SlugBase(title) + "-" + randomSuffix(5)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = slugSuffixAlphabet[rand.Intn(len(slugSuffixAlphabet))]
	}
	return string(b)
}
