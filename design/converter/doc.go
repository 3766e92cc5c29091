// Package converter defines the bidirectional string/value contract used by
// the design formatter together with the default implementations: fixed
// notation numbers, the permissive boolean rule, first-rune characters,
// layout-laddered dates, and the resource, shortcut and enumeration grammars.
package converter
