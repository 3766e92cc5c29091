// Package conv provides small, reflection-based helpers shared across the
// module: pointer/value adapters for optional results and a JSON decoder that
// materializes a value of an arbitrary reflect.Type.
package conv
