package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSellerIDCtxKey(t *testing.T) {
	if SellerIDCtxKey.String() != "sellerID" {
		t.Errorf("expected 'sellerID', got '%s'", SellerIDCtxKey.String())
	}
}

func TestGetSellerIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SellerIDCtxKey, int64(42))

	sellerID, ok := GetSellerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if sellerID != 42 {
		t.Errorf("expected sellerID=42, got %d", sellerID)
	}
}

func TestGetSellerIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	sellerID, ok := GetSellerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if sellerID != 0 {
		t.Errorf("expected sellerID=0, got %d", sellerID)
	}
}

func TestGetSellerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SellerIDCtxKey, "not-an-int")

	sellerID, ok := GetSellerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if sellerID != 0 {
		t.Errorf("expected sellerID=0, got %d", sellerID)
	}
}
