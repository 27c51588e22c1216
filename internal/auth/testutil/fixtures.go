package testutil

import (
	"fmt"
	"time"

	"ot-inventory/internal/auth/domain/model"

	"golang.org/x/crypto/bcrypt"
)

// UserFixture provides test data for the User model
type UserFixture struct{}

// NewUserFixture creates a new UserFixture instance
func NewUserFixture() *UserFixture {
	return &UserFixture{}
}

// ValidUser returns a valid user for testing
func (f *UserFixture) ValidUser() *model.User {
	return f.UserWithPassword("testuser", "password123")
}

// UserWithUsername returns a user with a specific username
func (f *UserFixture) UserWithUsername(username string) *model.User {
	return f.UserWithPassword(username, "password123")
}

// UserWithPassword returns a user with a specific username and password
func (f *UserFixture) UserWithPassword(username, password string) *model.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &model.User{
		ID:           "user-" + username,
		Username:     username,
		Name:         model.DefaultName,
		Email:        fmt.Sprintf("%s@%s", username, model.DefaultEmailDomain),
		Role:         model.DefaultRole,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
