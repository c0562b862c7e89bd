package journal

import (
	"cmp"
	"slices"
)

// Filter selects events from a journal. It is a disjunction of clauses: an event is selected when at least
// one clause accepts it, and a Filter without clauses selects every event.
type Filter struct {
	clauses []clause
}

// clause accepts an event when its type is listed (or no types are listed) and the payload
// satisfies the predicates: one of them, or all of them when requireAll is set.
type clause struct {
	eventTypes []string
	predicates []FilterPredicate
	requireAll bool
}

// FilterPredicate compares one top-level payload field with a value.
type FilterPredicate struct {
	key string
	val string
}

// P builds a FilterPredicate, e.g. P("HolderID", "S-1001").
func P(key string, val string) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

// FilterBuilder starts a Filter. The follow-up interfaces only offer the steps that keep the clause valid,
// so a clause is one of:
//
//	event types
//	any predicate | all predicates
//	event types plus any predicate | event types plus all predicates
type FilterBuilder interface {
	Matching() ClauseBuilder
	MatchingAnyEvent() Filter
}

// ClauseBuilder opens a clause.
type ClauseBuilder interface {
	AnyEventTypeOf(eventType string, more ...string) ClauseWithEventTypes
	AnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ClauseWithPredicates
}

// ClauseWithEventTypes can still narrow the clause by payload.
type ClauseWithEventTypes interface {
	AndAnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) CompletedClause
	AndAllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) CompletedClause
	CompletedClause
}

// ClauseWithPredicates can still narrow the clause by event type.
type ClauseWithPredicates interface {
	AndAnyEventTypeOf(eventType string, more ...string) CompletedClause
	CompletedClause
}

// CompletedClause either opens the next alternative or ends the Filter.
type CompletedClause interface {
	OrMatching() ClauseBuilder
	Finalize() Filter
}

// BuildEventFilter returns an empty FilterBuilder. Builders are values, so a partially built
// filter can be branched without the branches affecting each other.
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

type filterBuilder struct {
	done []clause
	open clause
}

func (b filterBuilder) Matching() ClauseBuilder {
	b.open = clause{}

	return b
}

func (b filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (b filterBuilder) AnyEventTypeOf(eventType string, more ...string) ClauseWithEventTypes {
	return b.withEventTypes(eventType, more)
}

func (b filterBuilder) AndAnyEventTypeOf(eventType string, more ...string) CompletedClause {
	return b.withEventTypes(eventType, more)
}

func (b filterBuilder) AnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ClauseWithPredicates {
	return b.withPredicates(false, predicate, more)
}

func (b filterBuilder) AndAnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) CompletedClause {
	return b.withPredicates(false, predicate, more)
}

func (b filterBuilder) AndAllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) CompletedClause {
	return b.withPredicates(true, predicate, more)
}

func (b filterBuilder) OrMatching() ClauseBuilder {
	b.done = append(slices.Clone(b.done), b.open)
	b.open = clause{}

	return b
}

func (b filterBuilder) Finalize() Filter {
	return Filter{clauses: append(slices.Clone(b.done), b.open)}
}

// withEventTypes drops empty names, sorts and de-duplicates.
func (b filterBuilder) withEventTypes(first string, more []string) filterBuilder {
	eventTypes := append(slices.Clone(b.open.eventTypes), first)
	eventTypes = append(eventTypes, more...)
	eventTypes = slices.DeleteFunc(eventTypes, func(eventType string) bool { return eventType == "" })
	slices.Sort(eventTypes)

	b.open.eventTypes = slices.Clip(slices.Compact(eventTypes))

	return b
}

// withPredicates drops predicates with an empty key or value, sorts and de-duplicates.
func (b filterBuilder) withPredicates(requireAll bool, first FilterPredicate, more []FilterPredicate) filterBuilder {
	predicates := append(slices.Clone(b.open.predicates), first)
	predicates = append(predicates, more...)
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, func(x, y FilterPredicate) int {
		return cmp.Or(cmp.Compare(x.key, y.key), cmp.Compare(x.val, y.val))
	})

	b.open.predicates = slices.Clip(slices.Compact(predicates))
	b.open.requireAll = requireAll

	return b
}

func (f Filter) accepts(event StorableEvent) bool {
	if len(f.clauses) == 0 {
		return true
	}

	return slices.ContainsFunc(f.clauses, func(c clause) bool { return c.accepts(event) })
}

func (c clause) accepts(event StorableEvent) bool {
	if len(c.eventTypes) > 0 && !slices.Contains(c.eventTypes, event.EventType) {
		return false
	}

	if len(c.predicates) == 0 {
		return true
	}

	holds := func(p FilterPredicate) bool { return p.holdsFor(event.PayloadJSON) }

	if c.requireAll {
		return !slices.ContainsFunc(c.predicates, func(p FilterPredicate) bool { return !holds(p) })
	}

	return slices.ContainsFunc(c.predicates, holds)
}
