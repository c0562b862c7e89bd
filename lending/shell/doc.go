// Package shell provides conversion functions between lending domain events and
// journal storable events, plus the dependency-free observability interfaces the
// engine reports through.
//
// This package implements the "imperative shell" around the functional core: it manages
// event serialization, deserialization, and metadata handling for the journal.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
