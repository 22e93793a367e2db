package dawg

import "errors"

var (
	// ErrOutOfOrder is returned by Add when a word sorts before the word
	// added just before it. Words must be added in non-decreasing order.
	ErrOutOfOrder = errors.New("dawg: words not in alphabetical order")

	// ErrInvalidWord is returned by Add for a word that is not valid UTF-8.
	ErrInvalidWord = errors.New("dawg: word is not valid UTF-8")

	// ErrFinished is returned by Add once Finish has been called.
	ErrFinished = errors.New("dawg: tried to add to a finished dawg")

	// ErrIndexOutOfRange is returned by At for an index that does not name
	// an accepted word.
	ErrIndexOutOfRange = errors.New("dawg: index out of range")
)
