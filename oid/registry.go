package oid

import "maps"

// Info describes a well-known object identifier.
type Info struct {
	OID         string
	Description string
	Comment     string
}

// Registry holds a collection of object identifier descriptions. The zero
// value is an empty registry ready for use via [Registry.Register].
type Registry struct {
	entries map[string]Info
}

// NewRegistry creates a registry pre-populated with the given entries.
func NewRegistry(infos ...Info) *Registry {
	r := &Registry{entries: make(map[string]Info, len(infos))}
	for _, info := range infos {
		r.entries[info.OID] = info
	}
	return r
}

// Register adds info to the registry, replacing any previous entry for the
// same identifier.
func (r *Registry) Register(info Info) {
	if r.entries == nil {
		r.entries = make(map[string]Info)
	}
	r.entries[info.OID] = info
}

// Lookup retrieves the entry for an identifier in dot notation.
func (r *Registry) Lookup(oid string) (Info, bool) {
	info, ok := r.entries[oid]
	return info, ok
}

// Count returns the number of identifiers in the registry.
func (r *Registry) Count() int {
	return len(r.entries)
}

// All returns a copy of all registry entries, keyed by dot notation.
func (r *Registry) All() map[string]Info {
	return maps.Clone(r.entries)
}

// Describe returns the description of a well-known identifier in dot
// notation, or an empty string if the identifier is not known.
func Describe(oid string) string {
	info, _ := wellKnown.Lookup(oid)
	return info.Description
}

// wellKnown lists the identifiers that commonly occur in X.509 certificates
// and CMS messages: PKCS#1 signature algorithms, PKCS#7/CMS content types,
// PKCS#9 attributes, X.500 attribute types, X.509v3 extensions and the NIST
// digest algorithms.
var wellKnown = NewRegistry(
	Info{OID: "1.2.840.113549.1.1.1", Description: "rsaEncryption", Comment: "PKCS #1"},
	Info{OID: "1.2.840.113549.1.1.5", Description: "sha1WithRSAEncryption", Comment: "PKCS #1"},
	Info{OID: "1.2.840.113549.1.1.10", Description: "rsassa-pss", Comment: "PKCS #1"},
	Info{OID: "1.2.840.113549.1.1.11", Description: "sha256WithRSAEncryption", Comment: "PKCS #1"},
	Info{OID: "1.2.840.113549.1.1.12", Description: "sha384WithRSAEncryption", Comment: "PKCS #1"},
	Info{OID: "1.2.840.113549.1.1.13", Description: "sha512WithRSAEncryption", Comment: "PKCS #1"},
	Info{OID: "1.2.840.10045.2.1", Description: "ecPublicKey", Comment: "ANSI X9.62"},
	Info{OID: "1.2.840.10045.3.1.7", Description: "prime256v1", Comment: "ANSI X9.62 named curve"},
	Info{OID: "1.2.840.10045.4.3.2", Description: "ecdsa-with-SHA256", Comment: "ANSI X9.62"},
	Info{OID: "1.2.840.10045.4.3.3", Description: "ecdsa-with-SHA384", Comment: "ANSI X9.62"},
	Info{OID: "1.2.840.10045.4.3.4", Description: "ecdsa-with-SHA512", Comment: "ANSI X9.62"},
	Info{OID: "1.2.840.113549.1.7.1", Description: "data", Comment: "PKCS #7"},
	Info{OID: "1.2.840.113549.1.7.2", Description: "signedData", Comment: "PKCS #7"},
	Info{OID: "1.2.840.113549.1.7.3", Description: "envelopedData", Comment: "PKCS #7"},
	Info{OID: "1.2.840.113549.1.9.3", Description: "contentType", Comment: "PKCS #9"},
	Info{OID: "1.2.840.113549.1.9.4", Description: "messageDigest", Comment: "PKCS #9"},
	Info{OID: "1.2.840.113549.1.9.5", Description: "signingTime", Comment: "PKCS #9"},
	Info{OID: "1.2.840.113549.1.9.16.2.14", Description: "timeStampToken", Comment: "S/MIME ESS"},
	Info{OID: "1.3.14.3.2.26", Description: "sha1", Comment: "OIW"},
	Info{OID: "2.16.840.1.101.3.4.2.1", Description: "sha-256", Comment: "NIST algorithm"},
	Info{OID: "2.16.840.1.101.3.4.2.2", Description: "sha-384", Comment: "NIST algorithm"},
	Info{OID: "2.16.840.1.101.3.4.2.3", Description: "sha-512", Comment: "NIST algorithm"},
	Info{OID: "2.5.4.3", Description: "commonName", Comment: "X.520 DN component"},
	Info{OID: "2.5.4.6", Description: "countryName", Comment: "X.520 DN component"},
	Info{OID: "2.5.4.7", Description: "localityName", Comment: "X.520 DN component"},
	Info{OID: "2.5.4.8", Description: "stateOrProvinceName", Comment: "X.520 DN component"},
	Info{OID: "2.5.4.10", Description: "organizationName", Comment: "X.520 DN component"},
	Info{OID: "2.5.4.11", Description: "organizationalUnitName", Comment: "X.520 DN component"},
	Info{OID: "2.5.29.14", Description: "subjectKeyIdentifier", Comment: "X.509v3 extension"},
	Info{OID: "2.5.29.15", Description: "keyUsage", Comment: "X.509v3 extension"},
	Info{OID: "2.5.29.17", Description: "subjectAltName", Comment: "X.509v3 extension"},
	Info{OID: "2.5.29.19", Description: "basicConstraints", Comment: "X.509v3 extension"},
	Info{OID: "2.5.29.35", Description: "authorityKeyIdentifier", Comment: "X.509v3 extension"},
)
