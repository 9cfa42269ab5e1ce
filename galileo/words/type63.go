package words

// This file handles word type 63 - the dummy word.  It carries no fields;
// a satellite transmits it when it has nothing to say.

// Type63 is word type 63: the dummy word.
type Type63 struct{}

// String returns a readable version of a word type 63.
func (word *Type63) String() string {
	return "dummy word"
}
