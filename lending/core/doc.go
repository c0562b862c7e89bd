// Package core contains the lending rules of a single-branch library:
// holders with a borrowing-limit policy, catalog items, loan records with their
// due-date lifecycle, the failure taxonomy, and the domain events the engine journals.
//
// Everything in here is free of infrastructure. Time is always passed in explicitly,
// so lateness can be evaluated against any reference timestamp.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
