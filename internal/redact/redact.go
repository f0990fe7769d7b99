// Package redact removes sensitive information from strings before they are
// logged or returned in error responses: connection strings, credentials,
// file paths, SQL fragments and bank account numbers.
package redact

import (
	"regexp"
	"strings"
)

// Redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

// accountMaskVisible is the number of trailing account-number characters
// left readable by AccountNumber.
const accountMaskVisible = 4

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; the connection-string rule runs before the
// host rule so the credentials never survive as a partial match.
var rules = []rule{
	{
		regexp.MustCompile(`(?i)(postgres|postgresql|pgx|mysql|db|database)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(
			`(?i)(SELECT|INSERT|UPDATE|DELETE|WITH)[\s\w,*()$.]+(?:FROM|INTO|SET|AS)(?:[\s\w,*()$='".]+)?`,
		),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(
			`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
		),
		RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// AccountNumber masks all but the last four characters of an account number,
// e.g. "12345678" becomes "****5678". Numbers of four characters or fewer are
// fully masked.
func AccountNumber(number string) string {
	if number == "" {
		return ""
	}
	runes := []rune(number)
	if len(runes) <= accountMaskVisible {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-accountMaskVisible) + string(runes[len(runes)-accountMaskVisible:])
}
