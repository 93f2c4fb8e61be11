package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireInflight_RejectsOverlap(t *testing.T) {
	ok := AcquireInflight(InteractionLike, "post1", "user1")
	assert.True(t, ok)

	// Même clé encore en vol: rejet
	assert.False(t, AcquireInflight(InteractionLike, "post1", "user1"))

	// Autre entité, autre interaction ou autre utilisateur: clés distinctes
	assert.True(t, AcquireInflight(InteractionLike, "post2", "user1"))
	assert.True(t, AcquireInflight(InteractionFollow, "post1", "user1"))
	assert.True(t, AcquireInflight(InteractionLike, "post1", "user2"))

	ReleaseInflight(InteractionLike, "post1", "user1")
	ReleaseInflight(InteractionLike, "post2", "user1")
	ReleaseInflight(InteractionFollow, "post1", "user1")
	ReleaseInflight(InteractionLike, "post1", "user2")
}

func TestReleaseInflight_AllowsNextMutation(t *testing.T) {
	assert.True(t, AcquireInflight(InteractionSubscribe, "plan1", "user1"))
	ReleaseInflight(InteractionSubscribe, "plan1", "user1")

	// Une fois la clé libérée, une nouvelle mutation passe
	assert.True(t, AcquireInflight(InteractionSubscribe, "plan1", "user1"))
	ReleaseInflight(InteractionSubscribe, "plan1", "user1")
}

func TestReleaseInflight_UnknownKeyIsNoop(t *testing.T) {
	ReleaseInflight(InteractionLike, "missing", "user1")
	assert.True(t, AcquireInflight(InteractionLike, "missing", "user1"))
	ReleaseInflight(InteractionLike, "missing", "user1")
}
