package routes

import (
	"fmt"
	"net/http"
	"testing"

	"litverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]string {
	return map[string]string{
		"first_name": "Connie",
		"surname":    "Jacques",
		"email":      email,
		"password":   "Pass1234",
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/auth/register", "", registerBody("new@email.com"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/auth/register", "", registerBody("new@email.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "already registered")
}

func TestRegisterRejectsWrongLengthPassword(t *testing.T) {
	r, _ := newTestServer(t)

	body := registerBody("short@email.com")
	body["password"] = "short"
	w := do(t, r, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/auth/register", "", registerBody("login@email.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "login@email.com", "password": "WrongPw1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "login@email.com", "password": "Pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Connie", resp["user"])
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	// The issued token works for authenticated calls.
	w = do(t, r, http.MethodGet, "/auth/user/login@email.com", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login@email.com", decode(t, w)["email"])
}

func TestGetUserRequiresOwnerOrAdmin(t *testing.T) {
	r, db := newTestServer(t)
	_, aliceToken := newUser(t, db, "alice@email.com", false)
	newUser(t, db, "bob@email.com", false)
	_, adminToken := newUser(t, db, "admin@email.com", true)

	w := do(t, r, http.MethodGet, "/auth/user/bob@email.com", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/auth/user/bob@email.com", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/auth/user/missing@email.com", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/auth/user/bob@email.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAllUsersAdminOnly(t *testing.T) {
	r, db := newTestServer(t)
	_, userToken := newUser(t, db, "user@email.com", false)
	_, adminToken := newUser(t, db, "admin@email.com", true)

	w := do(t, r, http.MethodGet, "/auth/user/all", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/auth/user/all", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUpdateUser(t *testing.T) {
	r, db := newTestServer(t)
	user, token := newUser(t, db, "update@email.com", false)

	w := do(t, r, http.MethodPut, "/auth/user/update", token, map[string]string{
		"first_name": "Carrie",
		"surname":    "White",
		"email":      "update@email.com",
		"password":   "NewPw123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Carrie", updated.FirstName)
	assert.Equal(t, "White", updated.Surname)

	// Old password no longer works, new one does.
	w = do(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "update@email.com", "password": "Pass1234",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = do(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "update@email.com", "password": "NewPw123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetAdmin(t *testing.T) {
	r, db := newTestServer(t)
	target, targetToken := newUser(t, db, "target@email.com", false)
	_, adminToken := newUser(t, db, "admin@email.com", true)

	path := fmt.Sprintf("/auth/register/admin/%d", target.ID)

	// A regular user cannot change admin flags.
	w := do(t, r, http.MethodPut, path, targetToken, map[string]bool{"admin": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPut, path, adminToken, map[string]bool{"admin": true})
	assert.Equal(t, http.StatusOK, w.Code)

	// The promotion is effective on the target's next request.
	w = do(t, r, http.MethodGet, "/auth/user/all", targetToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnregisterCascadesToReviews(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	user, token := newUser(t, db, "leaving@email.com", false)

	require.NoError(t, db.Create(&models.Read{Rating: 7, BookID: f.book.ID, UserID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Watched{Rating: 8, MovieID: f.movie.ID, UserID: user.ID}).Error)

	w := do(t, r, http.MethodDelete, "/auth/user/unregister/leaving@email.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reads, watched int64
	db.Model(&models.Read{}).Where("user_id = ?", user.ID).Count(&reads)
	db.Model(&models.Watched{}).Where("user_id = ?", user.ID).Count(&watched)
	assert.Zero(t, reads)
	assert.Zero(t, watched)
}

func TestUnregisterOtherUserForbidden(t *testing.T) {
	r, db := newTestServer(t)
	_, aliceToken := newUser(t, db, "alice@email.com", false)
	newUser(t, db, "bob@email.com", false)

	w := do(t, r, http.MethodDelete, "/auth/user/unregister/bob@email.com", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
