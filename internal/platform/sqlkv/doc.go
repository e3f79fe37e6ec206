// Package sqlkv implements the store.KV interface on top of a SQL
// database. A single kv_blobs table holds every blob; the same
// implementation serves both the embedded SQLite backend used for
// single-device deployments and a PostgreSQL backend for shared ones.
package sqlkv
