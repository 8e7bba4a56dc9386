// Package zipfsong picks the best songs of an album by how much more they
// are played than Zipf's law predicts.
//
// Zipf's law expects the i-th track (1-based) to be played 1/i as often as
// the first. A track played f times therefore has quality q = f·i, and the
// tracks with the highest q are the ones listeners like better than their
// position suggests. Equal quality is resolved in favor of the track that
// comes first on the album.
//
// Input:
//
//	n m
//	f1 name1
//	...
//	fn namen
//
// Select returns the m best names, best first, keeping only m candidates in
// memory at any time (see boundedpq).
package zipfsong
