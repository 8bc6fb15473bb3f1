package domain

import "time"

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockBullet    BlockKind = "bullet"
	BlockTable     BlockKind = "table"
)

// Block is one typed element of the generated document. Heading and bullet
// blocks use Level (heading: 0 is the document title; bullet: 1 is
// top-level).
type Block struct {
	Kind     BlockKind
	Level    int
	Text     string
	Centered bool
	Table    *Table
}

// Table is a grid with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// GeneratedReport is the composed document: an ordered block sequence built
// fresh on every generation and never mutated afterwards. Block order and
// formatting are the document's compatibility contract.
type GeneratedReport struct {
	Title       string
	GeneratedAt time.Time
	Blocks      []Block
}

func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

func CenteredHeading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text, Centered: true}
}

func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

func CenteredParagraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text, Centered: true}
}

func Bullet(level int, text string) Block {
	return Block{Kind: BlockBullet, Level: level, Text: text}
}

func TableBlock(t Table) Block {
	return Block{Kind: BlockTable, Table: &t}
}
