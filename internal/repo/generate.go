// Package repo contains the Ent-generated data access client.
// The generated sources are not committed; regenerate with:
//
//	go generate ./internal/...
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
