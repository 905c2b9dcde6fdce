// Package media describes uploaded files: where they belong (slots), what they are (kinds)
// and how a stored file is referenced from portfolio content.
package media
