package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

const userCollection = "users"

type UserController struct {
	Store store.Store
}

// Login verifies the password hash stored under the username and issues a
// bearer token carrying the role.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.Username == "" || requestBody.Password == "" {
		http.Error(w, `{"success": false, "message": "Missing data"}`, http.StatusBadRequest)
		return
	}

	fields, err := c.Store.Get(ctx, userCollection, requestBody.Username)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid username or password"}`, http.StatusUnauthorized)
		return
	}

	passwordHash, _ := fields["password_hash"].(string)
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(requestBody.Password)) != nil {
		http.Error(w, `{"success": false, "message": "Invalid username or password"}`, http.StatusUnauthorized)
		return
	}

	role, _ := fields["role"].(string)
	token, err := helper.GenerateToken(requestBody.Username, role)
	if err != nil {
		log.Printf("token generation failed for %q: %v", requestBody.Username, err)
		http.Error(w, `{"success": false, "message": "Login failed"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success":  true,
		"token":    token,
		"username": requestBody.Username,
		"role":     role,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetUsers lists all users without their password hashes.
func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	docs, err := c.Store.Query(ctx, userCollection, nil, store.QueryOpts{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing users"}`, http.StatusInternalServerError)
		return
	}

	users := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		user := doc.Fields
		delete(user, "password_hash")
		user["id"] = doc.ID
		users = append(users, user)
	}

	response := map[string]interface{}{
		"success": true,
		"data":    users,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AddUser creates a login with a bcrypt-hashed password. The role must be
// one of the known roles; duplicate usernames are rejected.
func (c *UserController) AddUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Missing data or invalid role"}`, http.StatusBadRequest)
		return
	}

	if _, err := c.Store.Get(ctx, userCollection, user.Username); err == nil {
		http.Error(w, `{"success": false, "message": "Username already exists"}`, http.StatusBadRequest)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Error checking username"}`, http.StatusInternalServerError)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), 14)
	if err != nil {
		log.Printf("password hashing failed: %v", err)
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	fields := store.M{
		"username":      user.Username,
		"password_hash": string(hash),
		"role":          user.Role,
	}
	if err := c.Store.Set(ctx, userCollection, user.Username, fields, false); err != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// DeleteUser removes a login. A superadmin cannot delete itself, so the
// system always keeps at least the caller.
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.Username == "" {
		http.Error(w, `{"success": false, "message": "Username is required"}`, http.StatusBadRequest)
		return
	}

	caller, _ := middleware.GetPrincipal(r)
	if requestBody.Username == caller {
		http.Error(w, `{"success": false, "message": "Cannot delete yourself"}`, http.StatusBadRequest)
		return
	}

	err := c.Store.Delete(ctx, userCollection, requestBody.Username)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "User deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
