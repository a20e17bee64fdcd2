/*
Package trie provides a prefix tree used as a spelling dictionary.
Words are stored case-insensitively over the 26 lowercase Latin letters and can
be looked up exactly or enumerated by prefix in alphabetical pre-order.
*/
package trie
