// Package bol defines the abstract syntax of the source logic: a compact
// description-logic vocabulary made of individuals, concepts, relations,
// typed properties and axioms.
//
// Every expression family is a closed sum type. Each interface carries an
// unexported marker method so only the types in this package implement it,
// and every traversal in the checker, morphism engine and compiler switches
// over the concrete types with a default arm that reports an unsupported
// construct.
//
// Nodes are immutable once built. A Vocabulary is an ordered sequence of
// declarations; order is significant because every reference must name a
// symbol declared earlier in the sequence.
package bol
