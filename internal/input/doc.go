/*
Package input translates platform-native key symbols into canonical
virtual-key codes suitable for injection into an embedded browser.

The translation is a pure, total function: every symbol maps to a defined
code, with VKUnknown as the sentinel for symbols that have no canonical
equivalent. Shifted symbol variants of digit keys map to the unshifted
digit's code, because canonical codes identify physical keys, not produced
characters.
*/
package input
