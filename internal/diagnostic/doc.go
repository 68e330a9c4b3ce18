// Package diagnostic provides structured warnings and errors collected while
// loading and validating record kind definitions.
//
// Key capabilities:
//   - Schema errors that block code generation
//   - Warnings for suspicious but valid definitions
//   - Source positions for Go struct input
package diagnostic
