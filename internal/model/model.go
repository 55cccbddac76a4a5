// Package model defines the records the API manages.
//
// Records are plain structs with JSON tags matching the wire format
// clients send and receive under the `data` envelope key.
package model
