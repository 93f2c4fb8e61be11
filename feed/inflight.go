package feed

import (
	"fmt"
	"sync"
)

// Interaction nomme un type de mutation protégé contre les doubles envois.
type Interaction string

const (
	InteractionLike      Interaction = "like"
	InteractionFollow    Interaction = "follow"
	InteractionSubscribe Interaction = "subscribe"
)

var (
	inflightMu   sync.Mutex
	inflightKeys = make(map[string]struct{})
)

func inflightKey(interaction Interaction, entityID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", interaction, entityID, userID)
}

// AcquireInflight réclame la clé (interaction, entité, utilisateur). Retourne
// false si une mutation précédente sur la même clé n'est pas terminée: au plus
// une mutation en vol par clé, le deuxième envoi doit être rejeté.
func AcquireInflight(interaction Interaction, entityID, userID string) bool {
	key := inflightKey(interaction, entityID, userID)
	inflightMu.Lock()
	defer inflightMu.Unlock()

	if _, pending := inflightKeys[key]; pending {
		return false
	}
	inflightKeys[key] = struct{}{}
	return true
}

// ReleaseInflight libère la clé une fois l'écriture terminée (succès ou échec).
func ReleaseInflight(interaction Interaction, entityID, userID string) {
	key := inflightKey(interaction, entityID, userID)
	inflightMu.Lock()
	delete(inflightKeys, key)
	inflightMu.Unlock()
}
