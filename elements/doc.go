// Package elements supplies concrete network.Element constructors for
// DC circuit analysis and steady-state heat transfer, along with the
// type names under which package study's Registry binds them, the way a
// study's model document refers to element types by string.
package elements
