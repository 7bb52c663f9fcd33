package comment

import (
	"context"
	"strings"
	"testing"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/testdb"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*gorm.DB, CommentService) {
	db := testdb.New(t)
	return db, NewCommentService(NewCommentRepository(db), user.NewUserRepository(db))
}

func TestAddComment(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	recipe := testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch)

	res, err := svc.AddComment(ctx, alice.ID.String(), recipe.ID.String(), domain.AddCommentRequest{Content: "  Tasty!  "})
	require.NoError(t, err)
	assert.Equal(t, "Tasty!", res.Content)
	assert.Equal(t, "alice Cook", res.AuthorName)
	assert.Equal(t, recipe.ID.String(), res.RecipeID)

	var count int64
	db.Model(&entities.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddComment_Errors(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	recipe := testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch)

	_, err := svc.AddComment(ctx, alice.ID.String(), recipe.ID.String(), domain.AddCommentRequest{Content: " \n\t "})
	assert.ErrorIs(t, err, domain.ErrEmptyComment)

	_, err = svc.AddComment(ctx, alice.ID.String(), recipe.ID.String(), domain.AddCommentRequest{Content: strings.Repeat("a", 2001)})
	assert.ErrorIs(t, err, domain.ErrCommentTooLong)

	_, err = svc.AddComment(ctx, alice.ID.String(), uuid.NewString(), domain.AddCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = svc.AddComment(ctx, alice.ID.String(), "bogus", domain.AddCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// an account whose profile is gone
	ghost := testdb.CreateAccount(t, db, "ghost", domain.RoleUser)
	require.NoError(t, db.Where("account_id = ?", ghost.ID).Delete(&entities.Profile{}).Error)
	_, err = svc.AddComment(ctx, ghost.ID.String(), recipe.ID.String(), domain.AddCommentRequest{Content: "boo"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestDeleteComment(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	bob := testdb.CreateAccount(t, db, "bob", domain.RoleUser)
	recipe := testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch)
	c := testdb.CreateComment(t, db, alice.ID, recipe.ID, "mine")
	require.NoError(t, db.Create(&entities.Like{ID: uuid.New(), AccountID: bob.ID, CommentID: &c.ID}).Error)

	err := svc.DeleteComment(ctx, bob.ID.String(), c.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCommentAccess)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	require.NoError(t, svc.DeleteComment(ctx, alice.ID.String(), c.ID.String()))

	var comments, likes int64
	db.Model(&entities.Comment{}).Count(&comments)
	db.Model(&entities.Like{}).Count(&likes)
	assert.Zero(t, comments)
	assert.Zero(t, likes)

	err = svc.DeleteComment(ctx, alice.ID.String(), c.ID.String())
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestListByRecipe(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	bob := testdb.CreateAccount(t, db, "bob", domain.RoleUser)
	recipe := testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch)
	other := testdb.CreateRecipe(t, db, alice.ID, "Cake", domain.CategoryDessert)

	first := testdb.CreateComment(t, db, alice.ID, recipe.ID, "first")
	second := testdb.CreateComment(t, db, bob.ID, recipe.ID, "second")
	testdb.CreateComment(t, db, bob.ID, other.ID, "elsewhere")
	require.NoError(t, db.Create(&entities.Like{ID: uuid.New(), AccountID: bob.ID, CommentID: &first.ID}).Error)
	require.NoError(t, db.Create(&entities.Like{ID: uuid.New(), AccountID: alice.ID, CommentID: &first.ID}).Error)

	list, err := svc.ListByRecipe(ctx, recipe.ID.String(), bob.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID.String(), list[0].ID)
	assert.Equal(t, "bob Cook", list[0].AuthorName)
	assert.Zero(t, list[0].Likes)
	assert.False(t, list[0].HasLiked)
	assert.Equal(t, first.ID.String(), list[1].ID)
	assert.EqualValues(t, 2, list[1].Likes)
	assert.True(t, list[1].HasLiked)

	anon, err := svc.ListByRecipe(ctx, recipe.ID.String(), "")
	require.NoError(t, err)
	require.Len(t, anon, 2)
	assert.False(t, anon[1].HasLiked)

	mine, err := svc.ListByAccount(ctx, bob.ID.String())
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
