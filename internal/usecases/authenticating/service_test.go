package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testCfg() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@lojaa.com.br",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "Login com credenciais válidas gera token",
			email:    "ana@lojaa.com.br",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@lojaa.com.br").
					Return(activeUser(t, "senha123"), nil)
			},
		},
		{
			name:     "Email é normalizado antes da busca",
			email:    "  Ana@LojaA.com.br ",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@lojaa.com.br").
					Return(activeUser(t, "senha123"), nil)
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@lojaa.com.br",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@lojaa.com.br").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@lojaa.com.br",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("ana@lojaa.com.br").
					Return(activeUser(t, "senha123"), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Conta desativada não loga mesmo com senha correta",
			email:    "ana@lojaa.com.br",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := activeUser(t, "senha123")
				user.Active = false
				userRepo.EXPECT().GetUserByEmail("ana@lojaa.com.br").Return(user, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Campos obrigatórios ausentes",
			email:    "",
			password: "",
			setup:    func(_ *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testCfg())

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token emitido precisa validar com o mesmo segredo
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, "ana@lojaa.com.br", claims.UserEmail)
			assert.Equal(t, 1, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken_SegredoErrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail("ana@lojaa.com.br").
		Return(activeUser(t, "senha123"), nil)

	issuer := NewService(userRepo, testCfg())
	token, err := issuer.LoginUser("ana@lojaa.com.br", "senha123")
	assert.NoError(t, err)

	otherCfg := &config.Config{Auth: config.Auth{Secret: "outro-segredo"}}
	validator := NewService(mocks.NewMockUserRepository(ctrl), otherCfg)

	claims, err := validator.ValidateToken(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Usuário novo recebe hash de senha e papel padrão", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail("novo@lojaa.com.br").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				assert.Equal(t, 3, user.RoleID)
				assert.False(t, user.Active)
				return user, nil
			})

		service := NewService(userRepo, testCfg())

		user, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Usuário",
			Email:        "Novo@LojaA.com.br",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "novo@lojaa.com.br", user.Email)
	})

	t.Run("Email já cadastrado é rejeitado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			GetUserByEmail("ana@lojaa.com.br").
			Return(activeUser(t, "senha123"), nil)

		service := NewService(userRepo, testCfg())

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@lojaa.com.br",
			PasswordHash: "senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service := NewService(mocks.NewMockUserRepository(ctrl), testCfg())

		user, err := service.CreateUser(&domain.User{Email: "so-email@lojaa.com.br"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Nil(t, user)
	})
}
