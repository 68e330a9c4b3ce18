// Package schema defines the YAML kind-definition file consumed by the
// record generator, its loader and its validation rules.
//
// A schema file looks like:
//
//	version: "1"
//	package: shapes
//	kinds:
//	  - name: Sample
//	    doc: three scalar fields
//	    fields:
//	      - {name: field1, type: float32}
//	      - field2: int32
//	      - field3: byte
//
// Fields keep their declaration order; that order defines field indices.
package schema
