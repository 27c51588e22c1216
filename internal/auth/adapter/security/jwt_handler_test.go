package security_test

import (
	"context"
	"testing"
	"time"

	"ot-inventory/internal/auth/adapter/security"
	"ot-inventory/internal/auth/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	config  *config.Config
	service *security.JWTokenService
}

func (suite *JWTTestSuite) SetupTest() {
	suite.config = &config.Config{
		JWTSecretKey:   "test-secret-key-32-characters-long-12345",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
	}

	service, err := security.NewJWTokenService(suite.config)
	require.NoError(suite.T(), err)
	suite.service = service
}

func (suite *JWTTestSuite) TestNewJWTokenService_ValidationErrors() {
	testCases := []struct {
		name         string
		modifyConfig func(*config.Config)
		expectedErr  string
	}{
		{
			name: "empty secret key",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTSecretKey = ""
			},
			expectedErr: "jwt secret key cannot be empty",
		},
		{
			name: "empty issuer",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTIssuer = ""
			},
			expectedErr: "jwt issuer cannot be empty",
		},
		{
			name: "zero TTL",
			modifyConfig: func(cfg *config.Config) {
				cfg.AccessTokenTTL = 0
			},
			expectedErr: "jwt access token TTL must be positive",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			cfg := &config.Config{
				JWTSecretKey:   suite.config.JWTSecretKey,
				JWTIssuer:      suite.config.JWTIssuer,
				AccessTokenTTL: suite.config.AccessTokenTTL,
			}
			tc.modifyConfig(cfg)

			service, err := security.NewJWTokenService(cfg)

			assert.Nil(suite.T(), service)
			assert.EqualError(suite.T(), err, tc.expectedErr)
		})
	}
}

func (suite *JWTTestSuite) TestGenerateToken_RoundTrip() {
	// Arrange
	ctx := context.Background()

	// Act
	token, err := suite.service.GenerateToken(ctx, "user-123", "alice", "User")

	// Assert
	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), token)

	claims, err := suite.service.ValidateToken(ctx, token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-123", claims.UserID())
	assert.Equal(suite.T(), "user-123", claims.Subject)
	assert.Equal(suite.T(), "alice", claims.Username)
	assert.Equal(suite.T(), "User", claims.Role)
	assert.Equal(suite.T(), "test-issuer", claims.Issuer)
	assert.WithinDuration(suite.T(), time.Now().Add(suite.config.AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func (suite *JWTTestSuite) TestValidateToken_Empty() {
	claims, err := suite.service.ValidateToken(context.Background(), "")

	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_Malformed() {
	claims, err := suite.service.ValidateToken(context.Background(), "not.a.token")

	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_WrongSecret() {
	// Arrange
	ctx := context.Background()
	otherCfg := &config.Config{
		JWTSecretKey:   "another-secret-key-32-characters-long-99",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
	}
	otherService, err := security.NewJWTokenService(otherCfg)
	require.NoError(suite.T(), err)

	token, err := otherService.GenerateToken(ctx, "user-123", "alice", "User")
	require.NoError(suite.T(), err)

	// Act
	claims, err := suite.service.ValidateToken(ctx, token)

	// Assert
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, security.ErrTokenSignatureInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_Expired() {
	// Arrange
	ctx := context.Background()
	now := time.Now().Add(-time.Hour)
	claims := jwt.MapClaims{
		"sub":      "user-123",
		"username": "alice",
		"iss":      "test-issuer",
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.config.JWTSecretKey))
	require.NoError(suite.T(), err)

	// Act
	got, err := suite.service.ValidateToken(ctx, signed)

	// Assert
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, security.ErrTokenExpired)
}

func (suite *JWTTestSuite) TestValidateToken_RejectsNoneAlgorithm() {
	// Arrange
	ctx := context.Background()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":      "user-123",
		"username": "alice",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(suite.T(), err)

	// Act
	got, err := suite.service.ValidateToken(ctx, signed)

	// Assert
	assert.Nil(suite.T(), got)
	assert.Error(suite.T(), err)
}

func TestJWTTestSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}
