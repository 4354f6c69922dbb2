package stixgraph

import "github.com/zero-day-ai/stixgraph/stix"

// Hand-crafted minimal STIX bundles shared across conversion tests.

func basicBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--1",
		"objects": []any{
			map[string]any{
				"type":               "threat-actor",
				"id":                 "threat-actor--1",
				"spec_version":       "2.1",
				"created":            "2023-01-01T00:00:00.000Z",
				"modified":           "2023-01-01T00:00:00.000Z",
				"name":               "Evil Corp",
				"aliases":            []any{"BadGuys", "Villains"},
				"threat_actor_types": []any{"criminal"},
				"sophistication":     "expert",
			},
			map[string]any{
				"type":          "malware",
				"id":            "malware--1",
				"spec_version":  "2.1",
				"created":       "2023-01-01T00:00:00.000Z",
				"modified":      "2023-01-01T00:00:00.000Z",
				"name":          "EvilLoader",
				"is_family":     true,
				"malware_types": []any{"trojan", "downloader"},
			},
			map[string]any{
				"type":         "attack-pattern",
				"id":           "attack-pattern--1",
				"spec_version": "2.1",
				"created":      "2023-01-01T00:00:00.000Z",
				"modified":     "2023-01-01T00:00:00.000Z",
				"name":         "Spearphishing",
				"kill_chain_phases": []any{
					map[string]any{"kill_chain_name": "mitre-attack", "phase_name": "initial-access"},
				},
			},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--1",
				"spec_version":      "2.1",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--1",
				"target_ref":        "malware--1",
			},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--2",
				"spec_version":      "2.1",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--1",
				"target_ref":        "attack-pattern--1",
			},
		},
	}
}

func emptyBundle() stix.Bundle {
	return stix.Bundle{"type": "bundle", "id": "bundle--empty", "objects": []any{}}
}

func nodesOnlyBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--nodes-only",
		"objects": []any{
			map[string]any{"type": "threat-actor", "id": "threat-actor--solo", "name": "Lone Wolf"},
			map[string]any{"type": "malware", "id": "malware--solo", "name": "Orphan Malware", "is_family": false},
		},
	}
}

func markingBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--marking",
		"objects": []any{
			map[string]any{
				"type":            "marking-definition",
				"id":              "marking-definition--1",
				"definition_type": "statement",
				"definition":      map[string]any{"statement": "Copyright 2023"},
			},
			map[string]any{
				"type":       "language-content",
				"id":         "language-content--1",
				"object_ref": "threat-actor--1",
				"contents":   map[string]any{"de": map[string]any{"name": "Boese Firma"}},
			},
			map[string]any{
				"type": "threat-actor",
				"id":   "threat-actor--with-marking",
				"name": "Marked Actor",
			},
		},
	}
}

func scoBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--sco",
		"objects": []any{
			map[string]any{
				"type":         "indicator",
				"id":           "indicator--1",
				"name":         "Malicious IP",
				"pattern":      "[ipv4-addr:value = '198.51.100.1']",
				"pattern_type": "stix",
			},
			map[string]any{"type": "ipv4-addr", "id": "ipv4-addr--1", "value": "198.51.100.1"},
			map[string]any{"type": "domain-name", "id": "domain-name--1", "value": "evil.example.com"},
			map[string]any{
				"type": "file",
				"id":   "file--1",
				"name": "malware.exe",
				"hashes": map[string]any{
					"SHA-256": "aabbccdd11223344aabbccdd11223344aabbccdd11223344aabbccdd11223344",
					"MD5":     "aabbccdd11223344aabbccdd11223344",
				},
				"size": float64(1024),
			},
			map[string]any{"type": "url", "id": "url--1", "value": "https://evil.example.com/payload"},
			map[string]any{"type": "email-addr", "id": "email-addr--1", "value": "attacker@evil.example.com"},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--sco1",
				"relationship_type": "based-on",
				"source_ref":        "indicator--1",
				"target_ref":        "ipv4-addr--1",
			},
		},
	}
}

func sightingBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--sighting",
		"objects": []any{
			map[string]any{"type": "identity", "id": "identity--org1", "name": "ACME Corp", "identity_class": "organization"},
			map[string]any{
				"type":         "indicator",
				"id":           "indicator--sighted",
				"name":         "Bad Indicator",
				"pattern":      "[ipv4-addr:value = '10.0.0.1']",
				"pattern_type": "stix",
			},
			map[string]any{
				"type":            "observed-data",
				"id":              "observed-data--1",
				"first_observed":  "2023-01-01T00:00:00.000Z",
				"last_observed":   "2023-01-01T00:00:00.000Z",
				"number_observed": float64(5),
			},
			map[string]any{"type": "intrusion-set", "id": "intrusion-set--sighted", "name": "Threat Group Alpha"},
			map[string]any{
				"type":               "sighting",
				"id":                 "sighting--full",
				"first_seen":         "2023-06-01T00:00:00.000Z",
				"last_seen":          "2023-06-15T00:00:00.000Z",
				"count":              float64(3),
				"sighting_of_ref":    "indicator--sighted",
				"where_sighted_refs": []any{"identity--org1"},
				"observed_data_refs": []any{"observed-data--1"},
			},
			map[string]any{
				"type":            "sighting",
				"id":              "sighting--minimal",
				"sighting_of_ref": "intrusion-set--sighted",
			},
		},
	}
}

func multiEdgeBundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--multi-edge",
		"objects": []any{
			map[string]any{"type": "threat-actor", "id": "threat-actor--multi", "name": "Multi Actor"},
			map[string]any{"type": "malware", "id": "malware--multi", "name": "Multi Malware", "is_family": true},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--multi1",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--multi",
				"target_ref":        "malware--multi",
			},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--multi2",
				"relationship_type": "attributed-to",
				"source_ref":        "threat-actor--multi",
				"target_ref":        "malware--multi",
			},
		},
	}
}

func stix20Bundle() stix.Bundle {
	return stix.Bundle{
		"type":         "bundle",
		"id":           "bundle--stix20",
		"spec_version": "2.0",
		"objects": []any{
			map[string]any{"type": "threat-actor", "id": "threat-actor--20", "name": "Legacy Actor", "labels": []any{"criminal"}},
			map[string]any{"type": "malware", "id": "malware--20", "name": "Legacy Malware", "labels": []any{"trojan"}},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--20",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--20",
				"target_ref":        "malware--20",
			},
			map[string]any{
				"type":            "observed-data",
				"id":              "observed-data--20",
				"first_observed":  "2020-01-01T00:00:00.000Z",
				"last_observed":   "2020-01-01T00:00:00.000Z",
				"number_observed": float64(1),
				"objects": map[string]any{
					"0": map[string]any{"type": "ipv4-addr", "value": "203.0.113.50"},
					"1": map[string]any{"type": "domain-name", "value": "legacy.example.com"},
				},
			},
		},
	}
}

func stix21Bundle() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--stix21",
		"objects": []any{
			map[string]any{
				"type":                 "infrastructure",
				"id":                   "infrastructure--1",
				"name":                 "C2 Server",
				"infrastructure_types": []any{"command-and-control"},
			},
			map[string]any{"type": "location", "id": "location--1", "name": "Eastern Europe", "region": "eastern-europe"},
			map[string]any{"type": "malware-analysis", "id": "malware-analysis--1", "product": "CuckooSandbox", "result": "malicious"},
			map[string]any{"type": "note", "id": "note--1", "content": "This actor is highly dangerous.", "object_refs": []any{"threat-actor--1"}},
			map[string]any{"type": "opinion", "id": "opinion--1", "opinion": "strongly-agree", "object_refs": []any{"threat-actor--1"}},
			map[string]any{
				"type":        "grouping",
				"id":          "grouping--1",
				"name":        "Threat Cluster Alpha",
				"context":     "suspicious-activity",
				"object_refs": []any{"infrastructure--1", "location--1"},
			},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--21-1",
				"relationship_type": "located-at",
				"source_ref":        "infrastructure--1",
				"target_ref":        "location--1",
			},
		},
	}
}

func mergeBundleA() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--a",
		"objects": []any{
			map[string]any{"type": "threat-actor", "id": "threat-actor--merge-a", "name": "Actor A"},
			map[string]any{"type": "malware", "id": "malware--shared", "name": "Shared Malware v1", "is_family": true},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--merge-a",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--merge-a",
				"target_ref":        "malware--shared",
			},
		},
	}
}

func mergeBundleB() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--b",
		"objects": []any{
			map[string]any{"type": "threat-actor", "id": "threat-actor--merge-b", "name": "Actor B"},
			map[string]any{"type": "malware", "id": "malware--shared", "name": "Shared Malware v2", "is_family": false},
			map[string]any{
				"type":              "relationship",
				"id":                "relationship--merge-b",
				"relationship_type": "uses",
				"source_ref":        "threat-actor--merge-b",
				"target_ref":        "malware--shared",
			},
		},
	}
}

func mergeBundleC() stix.Bundle {
	return stix.Bundle{
		"type": "bundle",
		"id":   "bundle--c",
		"objects": []any{
			map[string]any{"type": "tool", "id": "tool--merge-c", "name": "Hack Tool", "tool_types": []any{"exploitation"}},
		},
	}
}
