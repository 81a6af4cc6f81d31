package sizef

// Separator is the single character that joins the integer and
// fractional parts of a rendered value.
type Separator byte

const (
	// Point separates with a dot, as in "1.9".
	Point Separator = '.'
	// Comma separates with a comma, as in "1,9".
	Comma Separator = ','
)
