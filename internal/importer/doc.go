// Package importer loads vocabulary words from CSV and XLSX files into the
// word store. Each file holds one word per row with the columns
// word, difficulty_level.
package importer
