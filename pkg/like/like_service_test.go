package like

import (
	"context"
	"testing"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	svc    LikeService
	alice  *entities.Account
	bob    *entities.Account
	recipe *entities.Recipe
}

func newFixture(t *testing.T) fixture {
	db := testdb.New(t)
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	return fixture{
		db:     db,
		svc:    NewLikeService(NewLikeRepository(db)),
		alice:  alice,
		bob:    testdb.CreateAccount(t, db, "bob", domain.RoleUser),
		recipe: testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch),
	}
}

func (f fixture) counter(t *testing.T) int64 {
	var r entities.Recipe
	require.NoError(t, f.db.First(&r, "id = ?", f.recipe.ID).Error)
	return r.Likes
}

func (f fixture) rows(t *testing.T) int64 {
	var n int64
	require.NoError(t, f.db.Model(&entities.Like{}).Where("recipe_id = ?", f.recipe.ID).Count(&n).Error)
	return n
}

func TestLike_TwiceIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Like(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Likes)

	_, err = f.svc.Like(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	assert.EqualValues(t, 1, f.counter(t))
	assert.EqualValues(t, 1, f.rows(t))
}

func TestUnlike_TwiceIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Like(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	require.NoError(t, err)

	res, err := f.svc.Unlike(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	require.NoError(t, err)
	assert.Zero(t, res.Likes)

	_, err = f.svc.Unlike(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrLikeNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	assert.Zero(t, f.counter(t))
	assert.Zero(t, f.rows(t))
}

func TestLike_CounterMatchesRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	carol := testdb.CreateAccount(t, f.db, "carol", domain.RoleUser)
	target := f.recipe.ID.String()

	steps := []struct {
		who  *entities.Account
		like bool
	}{
		{f.alice, true}, {f.bob, true}, {carol, true},
		{f.bob, false}, {f.bob, false}, {f.alice, true},
		{carol, false}, {f.bob, true},
	}
	for _, step := range steps {
		if step.like {
			_, _ = f.svc.Like(ctx, step.who.ID.String(), domain.TargetRecipe, target)
		} else {
			_, _ = f.svc.Unlike(ctx, step.who.ID.String(), domain.TargetRecipe, target)
		}
		assert.Equal(t, f.rows(t), f.counter(t))
	}
	assert.EqualValues(t, 2, f.counter(t))
}

func TestLike_Comment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testdb.CreateComment(t, f.db, f.alice.ID, f.recipe.ID, "nice")

	res, err := f.svc.Like(ctx, f.bob.ID.String(), domain.TargetComment, c.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Likes)

	res, err = f.svc.Like(ctx, f.alice.ID.String(), domain.TargetComment, c.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Likes)

	_, err = f.svc.Like(ctx, f.bob.ID.String(), domain.TargetComment, c.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	res, err = f.svc.Unlike(ctx, f.bob.ID.String(), domain.TargetComment, c.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Likes)

	// comment likes never touch the recipe counter
	assert.Zero(t, f.counter(t))
}

func TestLike_BadTargets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Like(ctx, f.bob.ID.String(), "photo", f.recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidLikeTarget)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.svc.Like(ctx, f.bob.ID.String(), domain.TargetRecipe, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = f.svc.Unlike(ctx, f.bob.ID.String(), domain.TargetComment, "garbage")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestLike_TargetExclusivity(t *testing.T) {
	f := newFixture(t)
	c := testdb.CreateComment(t, f.db, f.alice.ID, f.recipe.ID, "nice")

	both := &entities.Like{ID: uuid.New(), AccountID: f.bob.ID, RecipeID: &f.recipe.ID, CommentID: &c.ID}
	assert.Error(t, f.db.Omit("Account").Create(both).Error)

	neither := &entities.Like{ID: uuid.New(), AccountID: f.bob.ID}
	assert.Error(t, f.db.Omit("Account").Create(neither).Error)
}

func TestCreateLike_MissingTargetIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewLikeRepository(f.db)

	gone := uuid.New()
	_, err := repo.CreateLike(ctx, &entities.Like{ID: uuid.New(), AccountID: f.bob.ID, CommentID: &gone})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = repo.CreateLike(ctx, &entities.Like{ID: uuid.New(), AccountID: f.bob.ID, RecipeID: &gone})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	var n int64
	require.NoError(t, f.db.Model(&entities.Like{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Zero(t, f.counter(t))
}

func TestLike_LikedCommentCannotBeDroppedAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testdb.CreateComment(t, f.db, f.alice.ID, f.recipe.ID, "nice")

	_, err := f.svc.Like(ctx, f.bob.ID.String(), domain.TargetComment, c.ID.String())
	require.NoError(t, err)

	// the foreign key refuses to orphan the like
	assert.Error(t, f.db.Delete(&entities.Comment{}, "id = ?", c.ID).Error)
}

func TestListByAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testdb.CreateComment(t, f.db, f.alice.ID, f.recipe.ID, "nice")

	_, err := f.svc.Like(ctx, f.bob.ID.String(), domain.TargetRecipe, f.recipe.ID.String())
	require.NoError(t, err)
	_, err = f.svc.Like(ctx, f.bob.ID.String(), domain.TargetComment, c.ID.String())
	require.NoError(t, err)

	items, err := f.svc.ListByAccount(ctx, f.bob.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 2)

	types := []string{items[0].TargetType, items[1].TargetType}
	assert.ElementsMatch(t, []string{domain.TargetRecipe, domain.TargetComment}, types)
}
