// Package source resolves a bundle source specifier into parsed STIX
// bundles ready for conversion. A specifier may be a path to a .json
// file, a directory of .json files, an http(s) URL, a list of JSON
// texts, or pre-parsed bundles. All resolution and parse failures are
// reported here, before materialization starts; the converter only ever
// sees well-formed bundle mappings.
package source
