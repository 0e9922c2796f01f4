package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute keys whose values are always
// redacted. The user entity's password and email fields are covered here so a
// rendered user map or fixture record can be logged as-is.
var SensitiveFields = []string{
	"password",
	"email",
	"secret",
	"token",
}

// emailPattern matches raw e-mail addresses that escape field-name redaction,
// e.g. inside an error message or a comment body.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// fixedRedactOptions is the number of masq options beyond SensitiveFields
// (2 prefixes + 2 regexes).
const fixedRedactOptions = 4

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Variations like "password_hash", "secret_key".
		masq.WithFieldPrefix("password_"),
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(emailPattern),
		masq.WithRegex(jwtPattern),
	)

	return masq.New(opts...)
}
