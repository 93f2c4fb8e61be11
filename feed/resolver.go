package feed

import (
	"fitplanhub-backend/db"
	"fitplanhub-backend/models"
)

// Les resolvers construisent en une seule requête l'ensemble des arêtes de
// relation d'un utilisateur (likes, follows, subscriptions), puis le test
// d'appartenance se fait en O(1) par entité. Une requête qui échoue fait
// échouer tout le lot: un flag inconnu ne doit jamais être présenté comme
// "false".

// LikedPostSet retourne les IDs des posts donnés que l'utilisateur a likés.
// Un userID vide (anonyme) ou une liste vide résout en un set vide sans
// toucher la base.
func LikedPostSet(userID string, postIDs []string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if userID == "" || len(postIDs) == 0 {
		return set, nil
	}

	var likes []models.Like
	if err := db.DB.Select("post_id").Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error; err != nil {
		return nil, err
	}

	for _, like := range likes {
		set[like.PostID] = struct{}{}
	}
	return set, nil
}

// FollowedTrainerSet retourne les IDs des trainers suivis par l'utilisateur.
func FollowedTrainerSet(userID string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if userID == "" {
		return set, nil
	}

	var follows []models.Follow
	if err := db.DB.Select("trainer_id").Where("follower_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}

	for _, follow := range follows {
		set[follow.TrainerID] = struct{}{}
	}
	return set, nil
}

// SubscribedPlanSet retourne les IDs des plans auxquels l'utilisateur est
// abonné.
func SubscribedPlanSet(userID string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if userID == "" {
		return set, nil
	}

	var subscriptions []models.Subscription
	if err := db.DB.Select("plan_id").Where("user_id = ?", userID).Find(&subscriptions).Error; err != nil {
		return nil, err
	}

	for _, subscription := range subscriptions {
		set[subscription.PlanID] = struct{}{}
	}
	return set, nil
}

// SetKeys aplatit un set en slice pour les clauses IN.
func SetKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	return keys
}
