package dto

import (
	"regexp"
	"strings"

	"github.com/bloghub/bloghub-be/internal/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Validate returns a field→message map; empty means the request is well formed.
func (r RegisterRequest) Validate() map[string]string {
	problems := map[string]string{}
	validateEmail(problems, r.Email)
	validatePassword(problems, r.Password)
	if strings.TrimSpace(r.DisplayName) == "" {
		problems["displayName"] = "display name is required"
	} else if len(r.DisplayName) > 100 {
		problems["displayName"] = "display name must be at most 100 characters"
	}
	return problems
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	problems := map[string]string{}
	validateEmail(problems, r.Email)
	if r.Password == "" {
		problems["password"] = "password is required"
	}
	return problems
}

func validateEmail(problems map[string]string, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		problems["email"] = "email is required"
	case len(email) > 320:
		problems["email"] = "email must be at most 320 characters"
	case !emailPattern.MatchString(email):
		problems["email"] = "email is not a valid address"
	}
}

func validatePassword(problems map[string]string, password string) {
	switch {
	case password == "":
		problems["password"] = "password is required"
	case len(password) < 6:
		problems["password"] = "password must be at least 6 characters"
	// bcrypt only reads the first 72 bytes; anything longer is rejected
	// here instead of failing at hash time.
	case len(password) > 72:
		problems["password"] = "password must be at most 72 characters"
	}
}

// UserDto is the public view of a user returned by auth and admin endpoints.
type UserDto struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// NewUserDto shapes a stored user for responses.
func NewUserDto(u models.User) UserDto {
	return UserDto{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

// AuthResponse carries the issued bearer token and the authenticated user.
type AuthResponse struct {
	AccessToken string  `json:"accessToken"`
	TokenType   string  `json:"tokenType"`
	User        UserDto `json:"user"`
}
