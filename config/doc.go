// Package config holds the tolerances and sentinel constants that the
// postsolve stack consumes from its caller, following the same
// functional-options construction idiom used throughout this module:
// sensible defaults first, each With... closure overriding one field.
package config
