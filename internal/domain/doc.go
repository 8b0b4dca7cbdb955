// Package domain defines the core business entities of the flashcard
// application: users, decks, and cards with their review scheduling state.
// Entities validate themselves on construction and carry no persistence
// concerns; stores and services operate on these types.
package domain
