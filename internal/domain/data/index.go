package data

// Index maps a normalized column value to the row positions holding it
type Index struct {
	Column string
	Data   map[string][]int // normalized value → row positions
	Nulls  []int            // positions holding nil
}

// NewIndex creates an empty index on column
func NewIndex(column string) *Index {
	return &Index{
		Column: column,
		Data:   make(map[string][]int),
	}
}

// Add records that the row at pos holds key. isNull marks nil values,
// which never share a bucket with any string key.
func (idx *Index) Add(key string, isNull bool, pos int) {
	if isNull {
		idx.Nulls = append(idx.Nulls, pos)
		return
	}
	idx.Data[key] = append(idx.Data[key], pos)
}

// First returns the lowest position stored for key
func (idx *Index) First(key string, isNull bool) (int, bool) {
	positions := idx.Data[key]
	if isNull {
		positions = idx.Nulls
	}
	if len(positions) == 0 {
		return 0, false
	}
	return positions[0], true
}
