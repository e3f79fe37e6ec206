// Package domain contains the core types of the drill engine: the drill
// modes and their exercises, the per-question and per-mode statistics, and
// the validation rules tying them together. It is independent of storage
// and transport.
package domain
