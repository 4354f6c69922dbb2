package stix

import "strings"

// Class categorizes a STIX object by how it materializes in the graph.
type Class string

const (
	// ClassSkippable marks administrative types (data markings, language
	// content) that never produce nodes or edges.
	ClassSkippable Class = "skippable"

	// ClassRelationship marks a STIX relationship object, materialized
	// as a directed edge.
	ClassRelationship Class = "relationship"

	// ClassSighting marks a STIX sighting object, materialized as a
	// node plus derived edges to the referenced objects.
	ClassSighting Class = "sighting"

	// ClassDomainObject marks a STIX Domain Object (SDO): a high-level
	// conceptual entity such as a threat actor, malware, or indicator.
	ClassDomainObject Class = "domain-object"

	// ClassObservable marks a STIX Cyber-observable Object (SCO): a
	// low-level technical artifact such as a file or network address.
	ClassObservable Class = "observable-object"

	// ClassUnknown marks any other declared type. Unknown objects are
	// still materialized as nodes but never originate edges.
	ClassUnknown Class = "unknown"
)

// IsValid returns true if the class is one of the defined categories.
func (c Class) IsValid() bool {
	switch c {
	case ClassSkippable, ClassRelationship, ClassSighting,
		ClassDomainObject, ClassObservable, ClassUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the class.
func (c Class) String() string {
	return string(c)
}

// sdoTypes is the STIX 2.1 Domain Object type vocabulary.
var sdoTypes = map[string]struct{}{
	"attack-pattern":   {},
	"campaign":         {},
	"course-of-action": {},
	"grouping":         {},
	"identity":         {},
	"incident":         {},
	"indicator":        {},
	"infrastructure":   {},
	"intrusion-set":    {},
	"location":         {},
	"malware":          {},
	"malware-analysis": {},
	"note":             {},
	"observed-data":    {},
	"opinion":          {},
	"report":           {},
	"threat-actor":     {},
	"tool":             {},
	"vulnerability":    {},
}

// scoTypes is the STIX 2.1 Cyber-observable Object type vocabulary.
var scoTypes = map[string]struct{}{
	"artifact":             {},
	"autonomous-system":    {},
	"directory":            {},
	"domain-name":          {},
	"email-addr":           {},
	"email-message":        {},
	"file":                 {},
	"ipv4-addr":            {},
	"ipv6-addr":            {},
	"mac-addr":             {},
	"mutex":                {},
	"network-traffic":      {},
	"process":              {},
	"software":             {},
	"url":                  {},
	"user-account":         {},
	"windows-registry-key": {},
	"x509-certificate":     {},
}

// skipTypes are administrative types excluded from the graph entirely.
var skipTypes = map[string]struct{}{
	"marking-definition": {},
	"language-content":   {},
}

// customSDOPrefixes extend the SDO vocabulary with third-party
// taxonomies. MITRE ATT&CK ships its STIX content with x-mitre-* types.
var customSDOPrefixes = []string{"x-mitre-"}

// TypeObservedData is the SDO type that may carry legacy STIX 2.0
// embedded observables.
const TypeObservedData = "observed-data"

// Classify returns the single Class for an object, evaluated in
// priority order. Skippable wins over every other category; an object
// whose type matches nothing is ClassUnknown, never an error.
func Classify(o Object) Class {
	t := o.Type()
	if _, ok := skipTypes[t]; ok {
		return ClassSkippable
	}
	if t == "relationship" {
		return ClassRelationship
	}
	if t == "sighting" {
		return ClassSighting
	}
	if isSDO(t) {
		return ClassDomainObject
	}
	if _, ok := scoTypes[t]; ok {
		return ClassObservable
	}
	return ClassUnknown
}

func isSDO(t string) bool {
	if _, ok := sdoTypes[t]; ok {
		return true
	}
	for _, prefix := range customSDOPrefixes {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}
