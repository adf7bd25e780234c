package model

// Table is a raw sheet as read from the source file: one header row and string cells.
type Table struct {
	Headers []string
	Rows    [][]string
}
