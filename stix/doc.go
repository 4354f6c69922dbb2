// Package stix provides the raw STIX object model used by the converter:
// an open-schema property-bag Object type, classification of declared
// object types into graph-bearing categories, and extraction of legacy
// STIX 2.0 embedded observables from observed-data objects.
//
// STIX objects are open-schema: producers attach arbitrary custom
// properties, and this package preserves them opaquely rather than
// binding objects to fixed structs. Classification is therefore driven
// entirely by the declared "type" property.
//
// # Classification
//
// Classify assigns every object exactly one Class, checked in priority
// order: skippable types first (so an administrative type can never be
// mistaken for anything else), then relationship, sighting, domain
// object, observable object, and finally unknown. Unknown is a real
// category, not an error: custom object types are materialized as graph
// nodes for forward compatibility.
//
// # Legacy embedded observables
//
// STIX 2.0 observed-data objects carry their observables inline, in a
// nested "objects" mapping keyed by index strings. ExtractEmbedded lifts
// these into standalone objects with deterministic synthetic identifiers
// so they can become first-class graph nodes alongside STIX 2.1
// reference-style observables.
package stix
