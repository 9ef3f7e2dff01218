// Package flux provides the generic flux rules that network.Element
// values are built around: proportional, observed, and constant. This
// is a closed set; domain-specific element constructors in package
// elements pick one of these and shape a gain vector for it, rather
// than writing new rules.
package flux
