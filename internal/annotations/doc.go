// Package annotations holds the typed in-memory annotation sequences shared
// by dataset loaders (melody contours, beats, sections, chords, keys) and the
// decoders for the file formats they ship in: delimited contour files, AIST
// beat/chorus text files, and GuitarSet JAMS documents.
//
// Every loader returns a nil payload without error when the annotation file
// does not exist; whether files are present is the validator's concern.
package annotations
