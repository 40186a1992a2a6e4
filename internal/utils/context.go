// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SellerIDCtxKey is the key used to store the authenticated seller
// identifier in the context. The seller id is the tenant scope of every
// sync operation and is resolved exclusively from the JWT by the auth
// middleware — never from a request body.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SellerIDCtxKey, int64(42))
var SellerIDCtxKey = contextKey("sellerID")

// GetSellerIDFromContext retrieves the seller identifier from the context.
//
// Returns the seller ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetSellerIDFromContext(ctx context.Context) (int64, bool) {
	sellerID, ok := ctx.Value(SellerIDCtxKey).(int64)
	return sellerID, ok
}
