// Package store defines interfaces and typed accessors for data
// persistence. These abstract the underlying storage mechanism from the
// application's core logic, allowing the drill engine to remain
// independent of specific database technologies or persistence details.
package store
