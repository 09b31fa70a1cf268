package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// Diagnosis explains why a fetched page likely yielded no records.
type Diagnosis struct {
	Blocked bool
	Reason  string
}

var (
	ipInTitleRegex = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
	titleRegex     = regexp.MustCompile(`(?i)<title[^>]*>([^<]*)</title>`)
)

// Diagnose inspects a fetched page for signs that the site refused the
// request. It only informs the empty-result warning; nothing acts on it.
// Checks, in order:
// 1. HTTP status code (403, 429, 503)
// 2. Exact denial phrases
// 3. IP address in title
// 4. Error title in short HTML
// 5. noindex + empty title + short HTML
func Diagnose(html string, statusCode int) Diagnosis {
	if statusCode == 403 || statusCode == 429 || statusCode == 503 {
		return Diagnosis{Blocked: true, Reason: fmt.Sprintf("HTTP %d", statusCode)}
	}

	denialPhrases := []string{
		"Sorry, your request has been denied",
		"Sorry, you have been blocked",
		"Attention Required! | Cloudflare",
		"Your IP has been blocked",
		"unusual traffic from your computer network",
		"ERR_NAME_NOT_RESOLVED",
		"ERR_CONNECTION_REFUSED",
		"ERR_CONNECTION_TIMED_OUT",
		"Access Denied",
		"403 Forbidden",
	}
	for _, phrase := range denialPhrases {
		if containsIgnoreCase(html, phrase) {
			return Diagnosis{Blocked: true, Reason: phrase}
		}
	}

	title := extractTitle(html)
	if ipInTitleRegex.MatchString(title) {
		return Diagnosis{Blocked: true, Reason: "IP address in title"}
	}

	if len(html) < 10000 {
		if strings.EqualFold(strings.TrimSpace(title), "error") {
			return Diagnosis{Blocked: true, Reason: "error title"}
		}
	}

	if len(html) < 3000 {
		if containsIgnoreCase(html, "noindex") && strings.TrimSpace(title) == "" {
			return Diagnosis{Blocked: true, Reason: "noindex + empty title"}
		}
	}

	return Diagnosis{}
}

func extractTitle(html string) string {
	match := titleRegex.FindStringSubmatch(html)
	if len(match) > 1 {
		return strings.TrimSpace(match[1])
	}
	return ""
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
