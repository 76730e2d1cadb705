// Package fuzztests holds fuzz targets for the lexer and parser. They live
// apart from the packages under test so a single corpus feeds both.
package fuzztests
