// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Result resolution lives here: the record factory, the ancestor
// resolver, the highlight rewriter and the resolver that assembles
// display items from a raw search response.
package services
