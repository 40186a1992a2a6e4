// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package syncer

import (
	"fmt"
	"sort"

	"github.com/webstore/seller-sync/models"
)

// Encoder converts one item into its positional compressed row for a single
// row version. Encoders are pure functions: no side effects, no storage
// access. Column 0 of the produced row must be the item id.
type Encoder[T models.Syncable] func(item T) models.CompressedRow

// EncoderSet is an explicit mapping from row version number to [Encoder].
//
// The mapping is explicit on purpose: selecting an encoder by list position
// would let an added or removed version silently shift every index. Here an
// unknown version always surfaces as [ErrUnknownRowVersion].
//
// An EncoderSet is populated once during service wiring and read-only
// afterwards, so it is safe for concurrent use.
type EncoderSet[T models.Syncable] struct {
	byVersion map[int]Encoder[T]
}

// NewEncoderSet constructs an [EncoderSet] with the given version 0 encoder.
// Every entity registers at least version 0; it is the default used by the
// v3 protocol, which has no version negotiation.
func NewEncoderSet[T models.Syncable](v0 Encoder[T]) *EncoderSet[T] {
	if v0 == nil {
		panic("syncer: nil encoder for row version 0")
	}

	return &EncoderSet[T]{
		byVersion: map[int]Encoder[T]{0: v0},
	}
}

// Register adds an encoder for the given row version and returns the set for
// chaining. Registration happens at startup; registering a nil encoder or
// re-registering an existing version is a programming error and panics.
func (s *EncoderSet[T]) Register(version int, enc Encoder[T]) *EncoderSet[T] {
	if enc == nil {
		panic(fmt.Sprintf("syncer: nil encoder for row version %d", version))
	}
	if _, exists := s.byVersion[version]; exists {
		panic(fmt.Sprintf("syncer: row version %d registered twice", version))
	}

	s.byVersion[version] = enc
	return s
}

// Resolve returns the encoder registered for version, or
// [ErrUnknownRowVersion] wrapped with the requested and known versions.
//
// Callers resolve the encoder BEFORE fetching any snapshot so that protocol
// skew fails fast without touching storage.
func (s *EncoderSet[T]) Resolve(version int) (Encoder[T], error) {
	enc, ok := s.byVersion[version]
	if !ok {
		return nil, fmt.Errorf("%w: requested %d, registered %v", ErrUnknownRowVersion, version, s.Versions())
	}

	return enc, nil
}

// Versions returns the sorted list of registered row versions.
func (s *EncoderSet[T]) Versions() []int {
	versions := make([]int, 0, len(s.byVersion))
	for v := range s.byVersion {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	return versions
}

// Encode converts items into compressed rows using the encoder registered
// for version, preserving input order.
func (s *EncoderSet[T]) Encode(items []T, version int) ([]models.CompressedRow, error) {
	enc, err := s.Resolve(version)
	if err != nil {
		return nil, err
	}

	rows := make([]models.CompressedRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, enc(item))
	}

	return rows, nil
}
