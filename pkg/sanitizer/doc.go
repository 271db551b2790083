// Package sanitizer normalizes user input before it is validated or stored.
//
// Transformations are plain func(T) T values; Apply runs them in order and
// Compose bundles them for reuse:
//
//	name := sanitizer.Apply(req.FirstName, sanitizer.StripControl, sanitizer.NormalizeWhitespace)
package sanitizer
