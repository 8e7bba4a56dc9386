// Package braces spots the "ugliest" source files of a tree by how deeply
// their curly braces nest.
//
// Extract walks a source text and records, for every nesting level, how
// many blocks open there, together with an optional pretty-printed outline
// of the braces alone:
//
//	class A { void m() { if (x) { return; } } }
//
//	{
//	    {
//	        {
//	        }
//	    }
//	}
//	Depths: [1, 1, 1]
//	Max depth: 3
//
// Ugliest analyzes every file of a directory (recursively by default) whose
// extension is in the configured set and keeps the n deepest ones.
//
// Braces are counted wherever they appear, including comments and string
// literals. A closing brace without a matching opening one is printed but
// never drives the depth below zero.
package braces
