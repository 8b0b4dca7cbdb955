// Package service contains the application services that orchestrate
// domain entities and stores: deck and card CRUD. Study-session and
// authentication services live in their own subpackages.
package service
