// Package restaurant holds the persisted entities of the restaurant directory:
// restaurants with their owned location and owner, the owner's user detail,
// menu items, and the name-keyed categories linked through RestaurantCategory rows.
package restaurant
