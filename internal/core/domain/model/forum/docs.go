// Package forum contains the community forum aggregates: posts and their
// comments.
package forum
