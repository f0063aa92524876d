// Package textbox lays out dialogue text for a fixed width in-game textbox.
//
// Text is edited in display form: real line breaks, bracketed macros such as
// [PLAYER], and glyphs standing in for colour and button macros. The package
// wraps display text to the pixel widths of the game font, tracks how each
// edit moves the caret, and converts display text to the escaped form read by
// the game's text compiler. Offsets are counted in runes throughout.
package textbox
