// Package convert maps relative locations to local account identifiers and
// back.
//
// Each scheme is a stateless Converter; a deployment composes the schemes it
// honors into an ordered Chain and the first scheme whose shape matches wins.
// Schemes are the only code that constructs or interprets Account bytes.
package convert
