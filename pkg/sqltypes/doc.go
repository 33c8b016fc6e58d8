// Package sqltypes wraps Ethereum primitives so they can be stored in text
// columns and exchanged as JSON strings.
//
// Every type encodes to lowercase 0x-prefixed hex. The same text is produced
// by String, MarshalText and Value, so a value written through gorm or
// database/sql reads back identically through encoding/json and vice versa.
package sqltypes
