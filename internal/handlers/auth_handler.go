package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DominicRaja2005/library-management-system/internal/utils"
)

type AuthHandler struct {
	ConfigCreds struct {
		UserId       string
		Username     string
		UserFullName string
		UserPassword string
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Username != a.ConfigCreds.Username || req.Password != a.ConfigCreds.UserPassword {
		utils.JSONError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(a.ConfigCreds.UserId)
	if err != nil {
		utils.JSONError(w, "Could not issue token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(LoginResponse{
		Success: true,
		Token:   token,
		User: LoginUser{
			ID:       a.ConfigCreds.UserId,
			Username: a.ConfigCreds.Username,
			FullName: a.ConfigCreds.UserFullName,
		},
	})
}
