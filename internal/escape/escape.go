// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
//
// The two lookup tables map bytes for the two directions of translation: a
// zero entry means the byte does not participate in a two-character escape.
// The parser consumes sequences through Unescaped; the serializer produces
// them through Quote.
package escape

// Escaped maps a raw byte to the letter of its two-character escape
// sequence, or zero if the byte is written literally. Only the quotation
// mark, the backslash, and the named control characters have letter forms;
// escaping "/" on output is permitted by the grammar but redundant.
var Escaped = [256]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Unescaped maps the second byte of a two-character escape sequence to the
// byte it denotes, or zero if the sequence is invalid. The "\u" form is not
// in the table; it is handled separately by the parser.
var Unescaped = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}
