// Package value implements an in-memory model for semi-structured
// (JSON-like) document values and the operations a document store needs on
// top of it: conversion to and from JSON, keypath-addressed bulk property
// updates and removals, and a recursive dictionary diff.
//
// # Value model
//
// A value is one of the canonical kinds:
//
//	nil             null
//	bool            boolean
//	int64, uint64   integer
//	float64         floating point
//	string          string
//	[]byte          binary blob (base64 in JSON)
//	[]any           array
//	map[string]any  dictionary
//
// Normalize converts arbitrary Go values into these kinds; every operation
// in this package normalizes the values it stores, so a tree built through
// this package only ever contains canonical kinds.
//
// # Mutation
//
// UpdateProperties and RemoveProperties address locations inside a dictionary
// with key paths (see package keypath) and mutate the dictionary in place,
// creating intermediate dictionaries and arrays as needed:
//
//	doc := map[string]any{}
//	err := value.UpdateProperties(doc, []map[string]any{
//	    {"name.first": "Sam", "contacts[0].city": "Oslo"},
//	})
//
// # Comparison
//
// CompareDicts produces a dictionary of differences between two
// dictionaries; an empty result means the two compare equal. Numeric kinds
// compare by value, so int64(1), uint64(1) and float64(1) are equal.
package value
