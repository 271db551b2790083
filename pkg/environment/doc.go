// Package environment parses the APP_ENV setting into a typed Environment
// that selects logger defaults and other production-only behavior.
package environment
