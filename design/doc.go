// Package design implements the conversion registry used to serialize and
// deserialize component attribute values to and from their textual design
// markup form.  The central Formatter type maps model types to bidirectional
// string converters, routes subtypes to registered supertypes and covers
// enumerations through declared value sets.
package design
