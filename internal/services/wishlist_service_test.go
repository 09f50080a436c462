// internal/services/wishlist_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/gamava/internal/models"
)

func TestAddToWishlistSuppressesDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	category := seedCategory(t, db, "games")
	user := seedUser(t, db, "fan@example.com")
	game := seedProduct(t, db, category.ID, productSeed{name: "game", price: "10.00"})

	first, err := svc.AddToWishlist(&AddToWishlistRequest{
		UserID:    &user.ID,
		ProductID: game.ID,
	})
	require.NoError(t, err)

	second, err := svc.AddToWishlist(&AddToWishlistRequest{
		UserID:    &user.ID,
		ProductID: game.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddToWishlistAnonymousSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	category := seedCategory(t, db, "games")
	game := seedProduct(t, db, category.ID, productSeed{name: "game", price: "10.00"})

	sessionID := "sess-abc123"
	item, err := svc.AddToWishlist(&AddToWishlistRequest{
		SessionID: &sessionID,
		ProductID: game.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, item.SessionID)
	assert.Equal(t, sessionID, *item.SessionID)
	assert.Nil(t, item.UserID)

	// Same session, same product: still one row
	again, err := svc.AddToWishlist(&AddToWishlistRequest{
		SessionID: &sessionID,
		ProductID: game.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, item.ID, again.ID)
}

func TestAddToWishlistRequiresExactlyOneOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	category := seedCategory(t, db, "games")
	user := seedUser(t, db, "fan@example.com")
	game := seedProduct(t, db, category.ID, productSeed{name: "game", price: "10.00"})
	sessionID := "sess-abc123"

	_, err := svc.AddToWishlist(&AddToWishlistRequest{ProductID: game.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.AddToWishlist(&AddToWishlistRequest{
		UserID:    &user.ID,
		SessionID: &sessionID,
		ProductID: game.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	user := seedUser(t, db, "fan@example.com")

	_, err := svc.AddToWishlist(&AddToWishlistRequest{
		UserID:    &user.ID,
		ProductID: 999,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetWishlistScopesByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	category := seedCategory(t, db, "games")
	user := seedUser(t, db, "fan@example.com")
	game := seedProduct(t, db, category.ID, productSeed{name: "game", price: "10.00"})
	other := seedProduct(t, db, category.ID, productSeed{name: "other", price: "20.00"})

	sessionID := "sess-abc123"
	_, err := svc.AddToWishlist(&AddToWishlistRequest{UserID: &user.ID, ProductID: game.ID})
	require.NoError(t, err)
	_, err = svc.AddToWishlist(&AddToWishlistRequest{SessionID: &sessionID, ProductID: other.ID})
	require.NoError(t, err)

	items, err := svc.GetWishlist(&user.ID, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, game.ID, items[0].ProductID)
	assert.Equal(t, game.ID, items[0].Product.ID)

	items, err = svc.GetWishlist(nil, &sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ProductID)

	// Both provided: union of the two scopes
	items, err = svc.GetWishlist(&user.ID, &sessionID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRemoveFromWishlist(t *testing.T) {
	db := newTestDB(t)
	svc := NewWishlistService(db)
	category := seedCategory(t, db, "games")
	user := seedUser(t, db, "fan@example.com")
	game := seedProduct(t, db, category.ID, productSeed{name: "game", price: "10.00"})

	item, err := svc.AddToWishlist(&AddToWishlistRequest{UserID: &user.ID, ProductID: game.ID})
	require.NoError(t, err)

	removed, err := svc.RemoveFromWishlist(item.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Removing an id that does not exist reports false, not an error
	removed, err = svc.RemoveFromWishlist(item.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Zero(t, count)
}
