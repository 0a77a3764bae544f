// Package repo holds the ent-generated database client for the schemas in
// internal/schema. Run `go generate ./internal/repo` after changing a schema;
// the generated code is not committed.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,intercept,schema/snapshot ../schema
