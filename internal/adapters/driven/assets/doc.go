// Package assets provides the bundled icon assets.
//
// Assets are embedded in the binary and served as data URLs so that
// rendered results never depend on the backend for the fallback icon.
package assets
