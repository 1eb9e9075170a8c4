package routes

import (
	"fmt"
	"net/http"
	"testing"

	"litverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAverageRating(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)

	for i, rating := range []int{7, 9, 8} {
		user, _ := newUser(t, db, fmt.Sprintf("reader%d@email.com", i), false)
		require.NoError(t, db.Create(&models.Read{Rating: rating, BookID: f.book.ID, UserID: user.ID}).Error)
	}

	w := do(t, r, http.MethodGet, fmt.Sprintf("/read/rating/%d", f.book.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 8.0, decode(t, w)["average_rating"])
}

func TestBookAverageRatingRounding(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)

	for i, rating := range []int{7, 9, 9} {
		user, _ := newUser(t, db, fmt.Sprintf("reader%d@email.com", i), false)
		require.NoError(t, db.Create(&models.Read{Rating: rating, BookID: f.book.ID, UserID: user.ID}).Error)
	}

	w := do(t, r, http.MethodGet, fmt.Sprintf("/read/rating/%d", f.book.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 8.33, decode(t, w)["average_rating"])
}

func TestAverageRatingWithoutEntries(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/read/rating/%d", f.book.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "No rating available")

	w = do(t, r, http.MethodGet, fmt.Sprintf("/watched/rating/%d", f.movie.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "No rating available")
}

func TestListReadsSelfOnly(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	alice, aliceToken := newUser(t, db, "alice@email.com", false)
	bob, _ := newUser(t, db, "bob@email.com", false)

	require.NoError(t, db.Create(&models.Read{Rating: 7, BookID: f.book.ID, UserID: alice.ID}).Error)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/read/%d", alice.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":7`)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/read/%d", bob.ID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/read/%d", alice.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListReadsEmptyMessage(t *testing.T) {
	r, db := newTestServer(t)
	user, token := newUser(t, db, "empty@email.com", false)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/read/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "not reviewed any books")
}

func TestAddRead(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	user, token := newUser(t, db, "reader@email.com", false)

	w := do(t, r, http.MethodPost, "/read/add", token, map[string]int{
		"book_id": int(f.book.ID), "rating": 9,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var read models.Read
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&read).Error)
	assert.Equal(t, 9, read.Rating)
	assert.Equal(t, f.book.ID, read.BookID)
}

func TestAddReadValidatesRating(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	_, token := newUser(t, db, "reader@email.com", false)

	for _, rating := range []int{0, 11} {
		w := do(t, r, http.MethodPost, "/read/add", token, map[string]int{
			"book_id": int(f.book.ID), "rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := do(t, r, http.MethodPost, "/read/add", token, map[string]int{
		"book_id": 9999, "rating": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOthersReadForbidden(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	alice, _ := newUser(t, db, "alice@email.com", false)
	_, bobToken := newUser(t, db, "bob@email.com", false)

	read := models.Read{Rating: 7, BookID: f.book.ID, UserID: alice.ID}
	require.NoError(t, db.Create(&read).Error)

	w := do(t, r, http.MethodPut, fmt.Sprintf("/read/update/%d", read.ID), bobToken, map[string]int{"rating": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/read/delete/%d", read.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnerCanUpdateAndDeleteRead(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	alice, aliceToken := newUser(t, db, "alice@email.com", false)

	read := models.Read{Rating: 7, BookID: f.book.ID, UserID: alice.ID}
	require.NoError(t, db.Create(&read).Error)

	w := do(t, r, http.MethodPut, fmt.Sprintf("/read/update/%d", read.ID), aliceToken, map[string]int{"rating": 10})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Read
	require.NoError(t, db.First(&updated, read.ID).Error)
	assert.Equal(t, 10, updated.Rating)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/read/delete/%d", read.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/read/delete/%d", read.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCanDeleteAnyRead(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	alice, _ := newUser(t, db, "alice@email.com", false)
	_, adminToken := newUser(t, db, "admin@email.com", true)

	read := models.Read{Rating: 7, BookID: f.book.ID, UserID: alice.ID}
	require.NoError(t, db.Create(&read).Error)

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/read/delete/%d", read.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWatchedFlow(t *testing.T) {
	r, db := newTestServer(t)
	f := seedCatalog(t, db)
	alice, aliceToken := newUser(t, db, "alice@email.com", false)
	_, bobToken := newUser(t, db, "bob@email.com", false)

	w := do(t, r, http.MethodPost, "/watched/add", aliceToken, map[string]int{
		"movie_id": int(f.movie.ID), "rating": 6,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var watched models.Watched
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&watched).Error)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/watched/%d", alice.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":6`)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/watched/%d", alice.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPut, fmt.Sprintf("/watched/update/%d", watched.ID), bobToken, map[string]int{"rating": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/watched/rating/%d", f.movie.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6.0, decode(t, w)["average_rating"])
}
