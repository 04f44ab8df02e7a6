// Package driven holds the outbound ports of quickfind: the interfaces
// services use to reach the search backend, persistence and assets.
//
// SearchTransport, ConfigStore and AssetResolver must be supplied.
// KVStore may be nil, in which case last searches are not remembered.
//
// Nothing here may import an adapter package; domain is the only
// internal dependency.
package driven
