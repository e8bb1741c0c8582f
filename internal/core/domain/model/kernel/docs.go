// Package kernel contains the shared value objects of the domain model:
// identifiers, money, and produce quantities. All types here are immutable,
// validated at construction, and safe for concurrent use.
package kernel
