package service

import (
	"testing"

	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/model"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/repository"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	db := testDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig(t))
}

func TestRegisterDefaults(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alice", Email: "alice@ecoquest.com", Password: "student123"}
	require.NoError(t, s.Register(user))

	saved, err := s.UserRepo.FindByEmail("alice@ecoquest.com")
	require.NoError(t, err)
	assert.Equal(t, model.Student, saved.Role)
	assert.Equal(t, 0, saved.EcoPoints)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("student123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)

	first := &model.User{Name: "Alice", Email: "alice@ecoquest.com", Password: "student123"}
	require.NoError(t, s.Register(first))

	second := &model.User{Name: "Impostor", Email: "alice@ecoquest.com", Password: "other456"}
	err := s.Register(second)
	require.ErrorIs(t, err, util.ErrEmailRegistered)

	var count int64
	require.NoError(t, s.UserRepo.DB.Model(&model.User{}).Where("email = ?", "alice@ecoquest.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alice", Email: "alice@ecoquest.com", Password: "student123"}
	require.NoError(t, s.Register(user))

	token, err := s.Login("alice@ecoquest.com", "student123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

// Both failure modes must be indistinguishable so login cannot be used
// to enumerate accounts.
func TestLoginFailuresAreUniform(t *testing.T) {
	s := newAuthService(t)

	user := &model.User{Name: "Alice", Email: "alice@ecoquest.com", Password: "student123"}
	require.NoError(t, s.Register(user))

	_, wrongPassword := s.Login("alice@ecoquest.com", "nope")
	_, unknownEmail := s.Login("ghost@ecoquest.com", "student123")

	require.ErrorIs(t, wrongPassword, util.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, util.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
