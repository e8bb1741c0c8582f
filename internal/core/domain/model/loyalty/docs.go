// Package loyalty contains the points account aggregate, reward amounts, and
// the tier ladder derived from lifetime earnings.
package loyalty
