// Package policy holds the per-resource authorization predicates that run
// after the coarse role gate. The rule content is pluggable so deployments
// can encode ownership or stricter business rules without touching services.
package policy

import "github.com/Ferrokwastaken/story-app-api/internal/models"

// StoryPolicy decides whether an actor may mutate a specific story. It runs
// in addition to the moderator role gate, not instead of it.
type StoryPolicy interface {
	CanUpdate(actor *models.User, story *models.Story) bool
	CanDelete(actor *models.User, story *models.Story) bool
}

// RoleBased permits any moderator or admin to mutate any story.
type RoleBased struct{}

func (RoleBased) CanUpdate(actor *models.User, _ *models.Story) bool {
	return actor != nil && actor.IsModerator()
}

func (RoleBased) CanDelete(actor *models.User, _ *models.Story) bool {
	return actor != nil && actor.IsModerator()
}
