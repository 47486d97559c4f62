package query

import "strings"

// Entity names used as cache key roots.
const (
	EntityJobs        = "jobs"
	EntityCandidates  = "candidates"
	EntityInterviews  = "interviews"
	EntityFeedback    = "feedback"
	EntityStageConfig = "stage_config"
	EntityStats       = "stats"
)

// Entities lists every cached entity.
var Entities = []string{
	EntityJobs,
	EntityCandidates,
	EntityInterviews,
	EntityFeedback,
	EntityStageConfig,
	EntityStats,
}

// KnownEntity reports whether entity is one of Entities.
func KnownEntity(entity string) bool {
	for _, e := range Entities {
		if e == entity {
			return true
		}
	}
	return false
}

// Key identifies a cached read: a whole collection when ID is empty,
// a single record otherwise.
type Key struct {
	Entity string
	ID     string
}

// List returns the collection key of entity.
func List(entity string) Key {
	return Key{Entity: entity}
}

// Detail returns the key of one record of entity.
func Detail(entity, id string) Key {
	return Key{Entity: entity, ID: id}
}

func (k Key) String() string {
	if k.ID == "" {
		return k.Entity
	}
	return k.Entity + "/" + k.ID
}

// BelongsTo reports whether a rendered key is entity's collection key or one
// of its detail keys.
func BelongsTo(key, entity string) bool {
	return key == entity || strings.HasPrefix(key, entity+"/")
}
