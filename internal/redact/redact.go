// Package redact scrubs credentials, connection strings, file paths and SQL
// out of error text before it is logged or returned to a client.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; credentials go first so that a connection string is
// not half-consumed by the host or path rules.
var rules = []rule{
	{
		// postgres://user:pass@  pgx://user:pass@
		regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|pgx)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]+`),
		RedactedCredentialPlaceholder,
	},
	{
		// sqlite DSNs, e.g. file:/var/lib/vocab.db?_foreign_keys=on
		regexp.MustCompile(`\bfile:\S+`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`\b(?:SELECT\b[^;\n]*\bFROM|INSERT\s+INTO|UPDATE\s+\w+\s+SET|DELETE\s+FROM)\b[^;\n]*`),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`(?:/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`[A-Za-z]:\\[^\\]+(?:\\[^\\]+)+`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9.-]*:\d{2,5}\b`),
		RedactedHostPlaceholder,
	},
}

// String returns input with every sensitive fragment replaced.
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

// Error redacts err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
