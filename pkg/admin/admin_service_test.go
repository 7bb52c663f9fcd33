package admin

import (
	"context"
	"errors"
	"testing"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/entities"
	"Go-Recipe-Share/internal/utils/testdb"
	"Go-Recipe-Share/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendMail(to string, subject string, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return m.err
}

func newService(t *testing.T, mailer *fakeMailer) (*gorm.DB, AdminService) {
	db := testdb.New(t)
	svc := NewAdminService(NewAdminRepository(db), user.NewUserRepository(db), mailer, "audit@example.com", zaptest.NewLogger(t))
	return db, svc
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestListUsers(t *testing.T) {
	db, svc := newService(t, &fakeMailer{})
	ctx := context.Background()
	root := testdb.CreateAccount(t, db, "root", domain.RoleAdmin)
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)

	users, err := svc.ListUsers(ctx, root.ID.String())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[1].Profile)

	_, err = svc.ListUsers(ctx, alice.ID.String())
	assert.ErrorIs(t, err, domain.ErrAdminRequired)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestDeleteUser_Guards(t *testing.T) {
	db, svc := newService(t, &fakeMailer{})
	ctx := context.Background()
	root := testdb.CreateAccount(t, db, "root", domain.RoleAdmin)
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	bob := testdb.CreateAccount(t, db, "bob", domain.RoleUser)

	err := svc.DeleteUser(ctx, alice.ID.String(), bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrAdminRequired)

	err = svc.DeleteUser(ctx, root.ID.String(), root.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	err = svc.DeleteUser(ctx, root.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	assert.EqualValues(t, 3, count(t, db, &entities.Account{}, ""))
}

func TestDeleteUser_Cascade(t *testing.T) {
	mailer := &fakeMailer{}
	db, svc := newService(t, mailer)
	ctx := context.Background()
	root := testdb.CreateAccount(t, db, "root", domain.RoleAdmin)
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)
	bob := testdb.CreateAccount(t, db, "bob", domain.RoleUser)

	aliceSoup := testdb.CreateRecipe(t, db, alice.ID, "Soup", domain.CategoryLunch)
	bobCake := testdb.CreateRecipe(t, db, bob.ID, "Cake", domain.CategoryDessert)

	onOwn := testdb.CreateComment(t, db, bob.ID, aliceSoup.ID, "bob on soup")
	onOther := testdb.CreateComment(t, db, alice.ID, bobCake.ID, "alice on cake")
	bobOnCake := testdb.CreateComment(t, db, bob.ID, bobCake.ID, "bob on cake")

	likes := []entities.Like{
		{ID: uuid.New(), AccountID: alice.ID, RecipeID: &bobCake.ID},
		{ID: uuid.New(), AccountID: bob.ID, RecipeID: &bobCake.ID},
		{ID: uuid.New(), AccountID: bob.ID, RecipeID: &aliceSoup.ID},
		{ID: uuid.New(), AccountID: bob.ID, CommentID: &onOther.ID},
		{ID: uuid.New(), AccountID: alice.ID, CommentID: &bobOnCake.ID},
		{ID: uuid.New(), AccountID: bob.ID, CommentID: &onOwn.ID},
	}
	for i := range likes {
		require.NoError(t, db.Omit("Account").Create(&likes[i]).Error)
	}
	require.NoError(t, db.Model(bobCake).Update("likes", 2).Error)
	require.NoError(t, db.Model(aliceSoup).Update("likes", 1).Error)

	require.NoError(t, svc.DeleteUser(ctx, root.ID.String(), alice.ID.String()))

	assert.Zero(t, count(t, db, &entities.Account{}, "id = ?", alice.ID))
	assert.Zero(t, count(t, db, &entities.Profile{}, "account_id = ?", alice.ID))
	assert.Zero(t, count(t, db, &entities.Recipe{}, "id = ?", aliceSoup.ID))
	assert.Zero(t, count(t, db, &entities.RecipeOwner{}, "account_id = ?", alice.ID))
	assert.Zero(t, count(t, db, &entities.Comment{}, "account_id = ?", alice.ID))
	assert.Zero(t, count(t, db, &entities.Comment{}, "recipe_id = ?", aliceSoup.ID))
	assert.Zero(t, count(t, db, &entities.Like{}, "account_id = ?", alice.ID))

	// bob's like on alice's deleted comment is gone, his cake like stays
	assert.EqualValues(t, 1, count(t, db, &entities.Like{}, ""))

	var cake entities.Recipe
	require.NoError(t, db.First(&cake, "id = ?", bobCake.ID).Error)
	assert.EqualValues(t, 1, cake.Likes)
	assert.EqualValues(t, cake.Likes, count(t, db, &entities.Like{}, "recipe_id = ?", bobCake.ID))

	assert.EqualValues(t, 1, count(t, db, &entities.Comment{}, ""))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "audit@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "alice")
}

func TestResetPassword(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	db, svc := newService(t, mailer)
	ctx := context.Background()
	root := testdb.CreateAccount(t, db, "root", domain.RoleAdmin)
	alice := testdb.CreateAccount(t, db, "alice", domain.RoleUser)

	err := svc.ResetPassword(ctx, root.ID.String(), alice.ID.String(), domain.ResetPasswordRequest{NewPassword: "123"})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	err = svc.ResetPassword(ctx, alice.ID.String(), root.ID.String(), domain.ResetPasswordRequest{NewPassword: "newpass1"})
	assert.ErrorIs(t, err, domain.ErrAdminRequired)

	err = svc.ResetPassword(ctx, root.ID.String(), uuid.NewString(), domain.ResetPasswordRequest{NewPassword: "newpass1"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	// mail failure does not fail the reset
	require.NoError(t, svc.ResetPassword(ctx, root.ID.String(), alice.ID.String(), domain.ResetPasswordRequest{NewPassword: "newpass1"}))
	assert.Len(t, mailer.sent, 1)

	var stored entities.Account
	require.NoError(t, db.First(&stored, "id = ?", alice.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpass1")))

	users := user.NewUserService(user.NewUserRepository(db), nil)
	_, err = users.Authenticate(ctx, domain.LoginRequest{Account: "alice", Password: "newpass1"})
	assert.NoError(t, err)
	_, err = users.Authenticate(ctx, domain.LoginRequest{Account: "alice", Password: testdb.FixturePassword})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}
