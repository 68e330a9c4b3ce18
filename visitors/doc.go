// Package visitors holds record.Visitor implementations that work on any
// generated record kind.
//
// Read-only visitors accept both the pointers passed by record.Apply and the
// values passed by record.CApply. Mutating visitors only act under Apply.
package visitors
