// Package user contains the account aggregate and the Role enum shared by the
// authorization rules across the marketplace.
package user
