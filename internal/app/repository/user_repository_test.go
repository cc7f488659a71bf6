package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/model"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTest(t))

	user := &model.User{
		Username:     "ana",
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	t.Run("Duplicate email", func(t *testing.T) {
		err := repo.Create(&model.User{Username: "ana2", Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
		assert.True(t, apperrors.IsDuplicateOn(err, "email"))
	})

	t.Run("Duplicate username", func(t *testing.T) {
		err := repo.Create(&model.User{Username: "ana", Name: "Ana", Email: "other@x.com", PasswordHash: "h"})
		assert.True(t, apperrors.IsDuplicateOn(err, "username"))
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewUserRepository(conn)
	user := seedUser(t, conn, "ana")

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "Existing user", email: user.Email},
		{name: "Unknown email", email: "ninguem@x.com", wantErr: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, found.ID)
			assert.Equal(t, user.PasswordHash, found.PasswordHash)
		})
	}
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewUserRepository(conn)
	user := seedUser(t, conn, "ana")

	user.Name = "Ana Maria"
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", found.Name)
	assert.Equal(t, "ana@x.com", found.Email)

	require.NoError(t, repo.Delete(user.ID))
	ok, err := repo.Exists(user.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_DeleteReferenced(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewUserRepository(conn)
	user := seedUser(t, conn, "ana")
	seedStore(t, conn, user, "Bazar")

	err := repo.Delete(user.ID)
	assert.True(t, apperrors.IsForeignKeyViolation(err))
}

func TestUserRepository_FindAll(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewUserRepository(conn)
	seedUser(t, conn, "ana")
	seedUser(t, conn, "bruno")

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].Username)
}
