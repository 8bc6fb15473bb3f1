package domain

// AttachmentCategory identifies one of the two optional uploaded tables.
type AttachmentCategory string

const (
	AttachmentShortSupply   AttachmentCategory = "short-supply"
	AttachmentMarketReturns AttachmentCategory = "market-returns"
)

// SupplementaryTable holds an uploaded tabular attachment. Columns and rows
// are rendered as-is; the schema is not constrained beyond the header being
// the first row of the source file.
type SupplementaryTable struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// TableLoadResult is the outcome of loading an attachment: either a table
// or a descriptive failure message. The composer consumes both uniformly,
// so a bad attachment never aborts report generation.
type TableLoadResult struct {
	Table   *SupplementaryTable
	Message string
}

func LoadedTable(t SupplementaryTable) TableLoadResult {
	return TableLoadResult{Table: &t}
}

func LoadFailure(msg string) TableLoadResult {
	return TableLoadResult{Message: msg}
}

func (r TableLoadResult) OK() bool {
	return r.Table != nil
}
