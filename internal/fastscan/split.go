package fastscan

// Span is the half-open byte range [Start, End) of one field within its line.
type Span struct {
	Start, End int
}

// fieldIter walks the space-separated fields of s.
type fieldIter struct {
	s     string
	limit int
	cur   int
	added int
}

// next returns the bounds of the next field. Once limit-1 fields have been
// returned under a positive limit, the rest of s from its first non-space byte
// is returned as one field.
func (it *fieldIter) next() (int, int, bool) {
	it.cur = skipSpaces(it.s, it.cur)
	if it.cur >= len(it.s) {
		return 0, 0, false
	}
	start := it.cur
	if it.limit > 0 && it.added >= it.limit-1 {
		it.cur = len(it.s)
	} else {
		it.cur = nextSpace(it.s, start)
	}
	it.added++
	return start, it.cur, true
}

// anyIter walks the maximal runs of s that contain no byte of set.
type anyIter struct {
	s   string
	set byteSet
	cur int
}

func (it *anyIter) next() (int, int, bool) {
	s := it.s
	for it.cur < len(s) && it.set.contains(s[it.cur]) {
		it.cur++
	}
	if it.cur >= len(s) {
		return 0, 0, false
	}
	start := it.cur
	for it.cur < len(s) && !it.set.contains(s[it.cur]) {
		it.cur++
	}
	end := it.cur

	// Step over the delimiter that ended the run, never past the end
	if it.cur < len(s) {
		it.cur++
	}
	return start, end, true
}

// AppendFields appends the space-separated fields of s to dst and returns the
// extended slice.
//
// If limit is positive, at most limit-1 fields are split off; whatever remains
// after them (starting at its first non-space byte) is appended unsplit as the
// last field. A non-positive limit splits every field.
//
// Fields are substrings of s; no bytes are copied.
func AppendFields(dst []string, s string, limit int) []string {
	it := fieldIter{s: s, limit: limit}
	for start, end, ok := it.next(); ok; start, end, ok = it.next() {
		dst = append(dst, s[start:end])
	}
	return dst
}

// AppendFieldSpans is AppendFields reporting each field as its byte range in s.
func AppendFieldSpans(dst []Span, s string, limit int) []Span {
	it := fieldIter{s: s, limit: limit}
	for start, end, ok := it.next(); ok; start, end, ok = it.next() {
		dst = append(dst, Span{Start: start, End: end})
	}
	return dst
}

// AppendFieldsAny appends every maximal run of s that contains none of the
// bytes in delims. An empty delims makes the whole of s a single field.
func AppendFieldsAny(dst []string, s, delims string) []string {
	it := anyIter{s: s, set: newByteSet(delims)}
	for start, end, ok := it.next(); ok; start, end, ok = it.next() {
		dst = append(dst, s[start:end])
	}
	return dst
}

// AppendFieldSpansAny is AppendFieldsAny reporting byte ranges.
func AppendFieldSpansAny(dst []Span, s, delims string) []Span {
	it := anyIter{s: s, set: newByteSet(delims)}
	for start, end, ok := it.next(); ok; start, end, ok = it.next() {
		dst = append(dst, Span{Start: start, End: end})
	}
	return dst
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

func nextSpace(s string, i int) int {
	for i < len(s) && s[i] != ' ' {
		i++
	}
	return i
}
