// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/auth, domain/blog,
// domain/analytics); the field-validation engine they are built on lives in
// domain/model. This root package holds the error kinds and sentinel errors
// that every entity reports through.
package domain
