// Package cachesync keeps the collection cache in step with confirmed
// mutations. Every create/update/delete that the records service acknowledges
// is turned into a Mutation and run through the rule table, which patches the
// dependent cached collections in place or invalidates the ones it cannot
// patch. Nothing is written before server confirmation, so a failed mutation
// leaves the cache exactly as it was.
package cachesync

import "github.com/TheDemonTuan/client-score-management/internal/entity"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Mutation describes one acknowledged write against the records service.
// After is the authoritative record the server returned. Before is the
// record's prior state when the caller had it (usually from the cached flat
// list); rules that need a foreign key off the old record fall back to
// invalidation when BeforeKnown is false.
type Mutation struct {
	Entity      string
	Action      Action
	Before      entity.Record
	After       entity.Record
	BeforeKnown bool
}

// Ref wraps a bare id as a Record for deletes where the prior record was
// never cached. Rules must check BeforeKnown before reading anything but the
// id off such a value.
func Ref(id string) entity.Record { return ref(id) }

type ref string

func (r ref) RecordID() string { return string(r) }

// Created builds the mutation for a confirmed create.
func Created(entityType string, after entity.Record) Mutation {
	return Mutation{Entity: entityType, Action: ActionCreate, After: after}
}

// Updated builds the mutation for a confirmed update. before may be nil when
// the prior state was never cached.
func Updated(entityType string, before, after entity.Record) Mutation {
	return Mutation{
		Entity:      entityType,
		Action:      ActionUpdate,
		Before:      before,
		After:       after,
		BeforeKnown: before != nil,
	}
}

// Deleted builds the mutation for a confirmed delete. before always carries
// at least the id; known marks whether it is the full prior record.
func Deleted(entityType string, before entity.Record, known bool) Mutation {
	return Mutation{
		Entity:      entityType,
		Action:      ActionDelete,
		Before:      before,
		BeforeKnown: known,
	}
}
