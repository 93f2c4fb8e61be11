package feed

import (
	"fitplanhub-backend/models"
)

// DisplayPost est un post enrichi de l'état d'interaction de l'utilisateur
// courant. Les compteurs reflètent toujours les collections embarquées.
type DisplayPost struct {
	models.Post
	LikeCount    int  `json:"likeCount"`
	CommentCount int  `json:"commentCount"`
	IsLiked      bool `json:"isLiked"`
}

// BuildDisplayPosts replie les posts joints bruts dans leur forme d'affichage.
// L'ordre d'entrée est préservé tel quel. likedSet contient les IDs de posts
// likés par l'utilisateur courant; un set nil vaut pour un anonyme (IsLiked
// toujours false).
func BuildDisplayPosts(posts []models.Post, likedSet map[string]struct{}) []DisplayPost {
	displayPosts := make([]DisplayPost, 0, len(posts))
	for _, post := range posts {
		_, liked := likedSet[post.ID]
		displayPosts = append(displayPosts, DisplayPost{
			Post:         post,
			LikeCount:    len(post.Likes),
			CommentCount: len(post.Comments),
			IsLiked:      liked,
		})
	}
	return displayPosts
}

// FilterTrainerPosts écarte les posts dont l'auteur n'a plus le rôle TRAINER
// (garde-fou contre un changement de rôle entre la création du post et la
// lecture du feed).
func FilterTrainerPosts(posts []models.Post) []models.Post {
	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.Trainer != nil && post.Trainer.Role == models.TrainerRole {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
